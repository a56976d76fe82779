package wire

import (
	"net"
	"testing"
	"time"

	"github.com/slyboard/slyboard/internal/history"
	"github.com/slyboard/slyboard/internal/message"
)

func TestWriteReadMsg(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	sent := &message.Message{
		Type:        message.TypeStatusResponse,
		Version:     "1.2.3",
		StartedAt:   time.Now().UTC().Truncate(time.Second),
		Paused:      true,
		Entries:     4,
		HistoryPath: "/tmp/history.json",
	}

	errCh := make(chan error, 1)
	go func() { errCh <- New(server).WriteMsg(sent) }()

	got, err := New(client).ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("WriteMsg: %v", err)
	}

	if got.Type != sent.Type || got.Version != sent.Version || !got.Paused ||
		got.Entries != 4 || got.HistoryPath != sent.HistoryPath {
		t.Errorf("got %+v, want %+v", got, sent)
	}
	if !got.StartedAt.Equal(sent.StartedAt) {
		t.Errorf("StartedAt = %s, want %s", got.StartedAt, sent.StartedAt)
	}
}

func TestWriteReadHistoryEntries(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	img := history.NewImage(1, 1, 4, true, 8, 4, []byte{10, 20, 30, 255})
	sent := &message.Message{
		Type:    message.TypeHistoryResponse,
		History: []history.Entry{history.NewText("hello"), img},
	}

	errCh := make(chan error, 1)
	go func() { errCh <- New(server).WriteMsg(sent) }()

	got, err := New(client).ReadMsg()
	if err != nil {
		t.Fatalf("ReadMsg: %v", err)
	}
	if err := <-errCh; err != nil {
		t.Fatalf("WriteMsg: %v", err)
	}

	if len(got.History) != 2 {
		t.Fatalf("got %d entries, want 2", len(got.History))
	}
	if !got.History[0].ContentEquals(sent.History[0]) || !got.History[1].ContentEquals(sent.History[1]) {
		t.Error("entries lost content on the wire")
	}
}

func TestReadMsgSequence(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		wc := New(server)
		wc.WriteMsg(&message.Message{Type: message.TypeStatus})
		wc.WriteMsg(&message.Message{Type: message.TypeClear})
	}()

	rc := New(client)
	first, err := rc.ReadMsg()
	if err != nil || first.Type != message.TypeStatus {
		t.Fatalf("first = %+v, %v", first, err)
	}
	second, err := rc.ReadMsg()
	if err != nil || second.Type != message.TypeClear {
		t.Fatalf("second = %+v, %v", second, err)
	}
}

func TestReadMsgRejectsGarbage(t *testing.T) {
	client, server := net.Pipe()
	defer client.Close()
	defer server.Close()

	go func() {
		server.Write([]byte("not json\n"))
	}()

	if _, err := New(client).ReadMsg(); err == nil {
		t.Fatal("expected decode error for non-JSON line")
	}
}
