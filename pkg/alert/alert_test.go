package alert

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minseolee/cryptolens/pkg/mining"
)

type stubNotifier struct {
	name string
	err  error
	sent []*Notification
}

func (s *stubNotifier) Name() string { return s.name }

func (s *stubNotifier) Send(_ context.Context, n *Notification) error {
	s.sent = append(s.sent, n)
	return s.err
}

func testNotification() *Notification {
	return &Notification{
		Title:     "Emerging topics",
		Body:      "1 pattern, 1 rule",
		WindowKey: "2024-03-11T12:00:00Z",
		Patterns: []mining.Pattern{
			{Items: []string{"#defi", "#eth"}, Utility: 0.8, Frequency: 4},
		},
		Rules: []mining.Rule{
			{Antecedent: []string{"#defi"}, Consequent: []string{"#eth"}, Support: 0.4, Confidence: 0.8},
		},
	}
}

func TestManagerBroadcast(t *testing.T) {
	ok := &stubNotifier{name: "ok"}
	m := NewManager([]Notifier{ok})
	require.True(t, m.HasNotifiers())

	n := testNotification()
	require.NoError(t, m.Broadcast(context.Background(), n))
	require.Len(t, ok.sent, 1)
	assert.Equal(t, n, ok.sent[0])
}

func TestManagerBroadcastCollectsErrors(t *testing.T) {
	boom := errors.New("boom")
	a := &stubNotifier{name: "a", err: boom}
	b := &stubNotifier{name: "b"}
	c := &stubNotifier{name: "c", err: errors.New("also broken")}
	m := NewManager([]Notifier{a, b, c})

	err := m.Broadcast(context.Background(), testNotification())
	require.Error(t, err)
	// Every notifier still gets the notification even when earlier ones fail.
	assert.Len(t, a.sent, 1)
	assert.Len(t, b.sent, 1)
	assert.Len(t, c.sent, 1)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "a: boom")
	assert.Contains(t, err.Error(), "c: also broken")
}

func TestManagerEmpty(t *testing.T) {
	m := NewManager(nil)
	assert.False(t, m.HasNotifiers())
	assert.NoError(t, m.Broadcast(context.Background(), testNotification()))
}

func TestWebhookSend(t *testing.T) {
	const secret = "hunter2"

	var gotBody []byte
	var gotSig, gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSig = r.Header.Get("X-Signature-256")
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, secret)
	n := testNotification()
	require.NoError(t, wh.Send(context.Background(), n))

	var decoded Notification
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, n.WindowKey, decoded.WindowKey)
	assert.Equal(t, "cryptolens/1.0", gotUA)

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(gotBody)
	assert.Equal(t, "sha256="+hex.EncodeToString(mac.Sum(nil)), gotSig)
}

func TestWebhookSendNonOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	wh := NewWebhook(srv.URL, "")
	err := wh.Send(context.Background(), testNotification())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
