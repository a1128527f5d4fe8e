package wrds

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ConnectionParams(t *testing.T) {
	t.Run("defaults fill host, port and database", func(t *testing.T) {
		p := ConnectionParams{Username: "u", Password: "p"}.withDefaults()

		require.Equal(t, DefaultHost, p.Host)
		require.Equal(t, DefaultPort, p.Port)
		require.Equal(t, DefaultDatabase, p.Database)
	})

	t.Run("explicit values survive", func(t *testing.T) {
		p := ConnectionParams{
			Username: "u",
			Password: "p",
			Host:     "localhost",
			Port:     5432,
			Database: "wrds_mirror",
		}.withDefaults()

		require.Equal(t, "localhost", p.Host)
		require.Equal(t, 5432, p.Port)
		require.Equal(t, "wrds_mirror", p.Database)
	})

	t.Run("connection string requires ssl", func(t *testing.T) {
		p := ConnectionParams{Username: "u", Password: "p"}.withDefaults()
		s := p.connectionStr()

		require.Contains(t, s, "sslmode=require")
		require.Contains(t, s, "host="+DefaultHost)
		require.Contains(t, s, "port=9737")
		require.Contains(t, s, "application_name=famafrench")
	})
}

func Test_Reconnect(t *testing.T) {
	// sql.Open is lazy, so handles can be built without a live server
	t.Run("keeps the handle a concurrent caller already replaced", func(t *testing.T) {
		current, err := sql.Open("postgres", "host=localhost")
		require.NoError(t, err)
		defer current.Close()
		dead, err := sql.Open("postgres", "host=localhost")
		require.NoError(t, err)
		defer dead.Close()

		c := &Connection{db: current, params: ConnectionParams{Username: "u", Password: "p"}}

		got, err := c.reconnect(context.Background(), dead)
		require.NoError(t, err)
		require.Same(t, current, got)
		require.Same(t, current, c.handle())
	})
}
