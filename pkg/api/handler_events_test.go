package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdag/taskdag/ent/dagexecution"
	"github.com/taskdag/taskdag/pkg/events"
	testdb "github.com/taskdag/taskdag/test/database"
)

func TestExecutionEventsHandler(t *testing.T) {
	client := testdb.NewTestClient(t)
	bus := events.NewBus(nil)
	_, router := newTestServer(t, client, &stubPlanner{}, &stubRunner{}, withBus(bus))

	srv := httptest.NewServer(router)
	defer srv.Close()
	wsBase := "ws" + strings.TrimPrefix(srv.URL, "http")

	t.Run("relays events until the terminal one, then closes", func(t *testing.T) {
		seedExecutionRow(t, client, "exec_ws", dagexecution.StatusRunning)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		conn, _, err := websocket.Dial(ctx, wsBase+"/api/v1/executions/exec_ws/events", nil)
		require.NoError(t, err)
		defer conn.CloseNow()

		// Publish only once the handler's subscription is registered.
		require.Eventually(t, func() bool {
			return bus.Subscribers("exec_ws") > 0
		}, 5*time.Second, 10*time.Millisecond)

		bus.Publish(events.New(events.EventTypeTaskCompleted, "exec_ws",
			map[string]interface{}{"task_id": "001"}))
		bus.Publish(events.New(events.EventTypeExecutionCompleted, "exec_ws", nil))

		var first events.Event
		require.NoError(t, wsjson.Read(ctx, conn, &first))
		assert.Equal(t, events.EventTypeTaskCompleted, first.Type)
		assert.Equal(t, "001", first.Data["task_id"])

		var second events.Event
		require.NoError(t, wsjson.Read(ctx, conn, &second))
		assert.Equal(t, events.EventTypeExecutionCompleted, second.Type)

		var extra events.Event
		err = wsjson.Read(ctx, conn, &extra)
		require.Error(t, err, "the stream ends after the terminal event")
		assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
	})

	t.Run("an already settled execution closes immediately", func(t *testing.T) {
		seedExecutionRow(t, client, "exec_ws_done", dagexecution.StatusCompleted)
		bus.Publish(events.New(events.EventTypeExecutionCompleted, "exec_ws_done", nil))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		conn, _, err := websocket.Dial(ctx, wsBase+"/api/v1/executions/exec_ws_done/events", nil)
		require.NoError(t, err)
		defer conn.CloseNow()

		var evt events.Event
		err = wsjson.Read(ctx, conn, &evt)
		require.Error(t, err)
		assert.Equal(t, websocket.StatusNormalClosure, websocket.CloseStatus(err))
	})

	t.Run("an unknown execution is refused before the upgrade", func(t *testing.T) {
		resp, err := http.Get(srv.URL + "/api/v1/executions/exec_ws_ghost/events")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
