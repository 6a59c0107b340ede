package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sort"
	"sync"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/lintang-b-s/bestpath/pkg/util"
)

// User. one websocket connection sending plan requests as json text frames.
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

func (u *User) ID() uint {
	return u.id
}

// readRequest returns nil, nil for control frames.
func (u *User) readRequest() (*planRequest, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	req := &planRequest{}
	decoder := json.NewDecoder(r)
	if err := decoder.Decode(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Plan reads one request from the connection and writes back the plan or an error envelope.
// A returned error means the connection is unusable.
func (u *User) Plan(ctx context.Context) error {
	req, err := u.readRequest()
	if err != nil {
		u.conn.Close()
		return err
	}
	if req == nil {
		return nil
	}

	if err := validateRequest(req); err != nil {
		return u.write(errorEnvelope(http.StatusBadRequest, err))
	}

	out, err := u.hub.plannerService.Plan(ctx, req.toInput())
	if err != nil {
		status := http.StatusInternalServerError
		var ierr *util.Error
		if errors.As(err, &ierr) && ierr.Code() == util.ErrBadParamInput {
			status = http.StatusBadRequest
		}
		return u.write(errorEnvelope(status, err))
	}

	return u.write(envelope{"data": NewPlanResponse(out)})
}

func errorEnvelope(status int, err error) envelope {
	return envelope{"error": map[string]string{
		"code":    http.StatusText(status),
		"message": err.Error(),
	}}
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

type Hub struct {
	mu             sync.RWMutex
	seq            uint
	us             []*User
	ns             map[uint]*User
	plannerService PlannerService
}

func NewHub(plannerService PlannerService) *Hub {
	return &Hub{
		ns:             make(map[uint]*User),
		us:             make([]*User, 0),
		plannerService: plannerService,
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.us = append(h.us, user)

	h.seq++
	h.mu.Unlock()

	return user
}

func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.ns[user.id]; !ok {
		return
	}
	delete(h.ns, user.id)

	i := sort.Search(len(h.us), func(i int) bool {
		return h.us[i].id >= user.id
	})

	newUs := make([]*User, len(h.us)-1)
	copy(newUs[:i], h.us[:i])
	copy(newUs[i:], h.us[i+1:])
	h.us = newUs
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.us)
}

// RemoveAllUser closes every connection and empties the hub.
func (h *Hub) RemoveAllUser() {
	h.mu.Lock()
	users := h.us
	h.us = make([]*User, 0)
	h.ns = make(map[uint]*User)
	h.mu.Unlock()

	for _, user := range users {
		user.conn.Close()
	}
}
