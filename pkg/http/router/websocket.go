package router

import (
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/bestpath/pkg/http/router/controllers"
	"go.uber.org/zap"
)

// handleWebsocket. upgrade the connection and serve plan requests on it until the client leaves.
func (api *API) handleWebsocket(w http.ResponseWriter, r *http.Request) {
	if !api.acquireSession() {
		http.Error(w, "server is shutting down", http.StatusServiceUnavailable)
		return
	}

	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.wg.Done()
		api.log.Info("upgrade error", zap.Error(err), zap.String("remote_addr", r.RemoteAddr))
		return
	}
	// the server's read/write deadlines still apply to the hijacked conn.
	_ = conn.SetDeadline(time.Time{})

	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol),
		zap.String("request_id", RequestIDFromContext(r.Context())))

	user := api.hub.Register(conn)
	if api.isClosing() {
		// registered after RemoveAllUser ran, nobody else will close it.
		conn.Close()
	}

	go api.serve(user)
}

func (api *API) serve(user *controllers.User) {
	defer api.wg.Done()
	defer api.hub.Remove(user)

	for {
		err := user.Plan(api.ctx)
		if err == nil {
			continue
		}

		var closed wsutil.ClosedError
		if errors.As(err, &closed) || errors.Is(err, io.EOF) || errors.Is(err, net.ErrClosed) {
			api.log.Info("user disconnected from websocket server", zap.Uint("user", user.ID()))
		} else {
			api.log.Error("error serving websocket plan request", zap.Uint("user", user.ID()), zap.Error(err))
		}
		return
	}
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}
