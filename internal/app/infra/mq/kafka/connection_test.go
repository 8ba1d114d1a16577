package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"oms/api/internal/app/pkg/logger"
)

// fakeSender 测试用 Sender
type fakeSender struct {
	sendFn   func(topic, key, payload string) error
	sent     []sentMessage
	closeCnt int
	closeErr error
}

type sentMessage struct {
	topic   string
	key     string
	payload string
}

func (s *fakeSender) Send(topic, key, payload string) error {
	s.sent = append(s.sent, sentMessage{topic: topic, key: key, payload: payload})
	if s.sendFn != nil {
		return s.sendFn(topic, key, payload)
	}
	return nil
}

func (s *fakeSender) Close() error {
	s.closeCnt++
	return s.closeErr
}

// fakeDialer 按预设结果序列返回的 Dialer，记录调用次数
type fakeDialer struct {
	calls   int
	results []error
	sender  *fakeSender
}

func (d *fakeDialer) dial(ctx context.Context) (Sender, error) {
	idx := d.calls
	d.calls++
	if idx < len(d.results) && d.results[idx] != nil {
		return nil, d.results[idx]
	}
	if d.sender == nil {
		d.sender = &fakeSender{}
	}
	return d.sender, nil
}

func testPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:  5,
		InitialDelay: 300 * time.Millisecond,
		Factor:       1.5,
		MaxDelay:     30 * time.Second,
	}
}

func newTestManager(dial Dialer, policy RetryPolicy) *ConnectionManager {
	return NewConnectionManager(dial, time.Second, policy, logger.NopLogger{})
}

func TestRetryPolicyDelayFor(t *testing.T) {
	policy := testPolicy()

	cases := []struct {
		attempt int
		want    time.Duration
	}{
		{attempt: 1, want: 300 * time.Millisecond},
		{attempt: 2, want: 450 * time.Millisecond},
		{attempt: 3, want: 675 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := policy.DelayFor(tc.attempt); got != tc.want {
			t.Errorf("DelayFor(%d) = %s, want %s", tc.attempt, got, tc.want)
		}
	}

	// 大量失败后退避封顶
	if got := policy.DelayFor(100); got != 30*time.Second {
		t.Errorf("DelayFor(100) = %s, want cap 30s", got)
	}
}

func TestConnectSuccess(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())

	m.Connect(context.Background())

	if m.State() != StateConnected {
		t.Fatalf("state = %s, want connected", m.State())
	}
	if m.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", m.Attempts())
	}
	if _, ok := m.Current(); !ok {
		t.Error("Current() should return a sender after connect")
	}
}

func TestConnectRetriesWithBackoffUntilDegraded(t *testing.T) {
	dialErr := errors.New("broker unreachable")
	dialer := &fakeDialer{results: []error{dialErr, dialErr, dialErr, dialErr, dialErr}}
	m := newTestManager(dialer.dial, testPolicy())

	var delays []time.Duration
	m.schedule = func(d time.Duration, fn func()) {
		delays = append(delays, d)
		fn()
	}

	m.Connect(context.Background())

	if m.State() != StateDegraded {
		t.Fatalf("state = %s, want degraded", m.State())
	}
	if dialer.calls != 5 {
		t.Errorf("dial calls = %d, want 5", dialer.calls)
	}

	// 5 次尝试之间共 4 次退避：300ms, 450ms, 675ms, 1012.5ms
	want := []time.Duration{
		300 * time.Millisecond,
		450 * time.Millisecond,
		675 * time.Millisecond,
		1012500 * time.Microsecond,
	}
	if len(delays) != len(want) {
		t.Fatalf("got %d scheduled retries, want %d", len(delays), len(want))
	}
	for i, d := range delays {
		if d != want[i] {
			t.Errorf("delay[%d] = %s, want %s", i, d, want[i])
		}
	}
}

func TestConnectRecoversMidRetry(t *testing.T) {
	dialErr := errors.New("broker unreachable")
	dialer := &fakeDialer{results: []error{dialErr, dialErr, nil}}
	m := newTestManager(dialer.dial, testPolicy())
	m.schedule = func(d time.Duration, fn func()) { fn() }

	m.Connect(context.Background())

	if m.State() != StateConnected {
		t.Fatalf("state = %s, want connected", m.State())
	}
	if m.Attempts() != 3 {
		t.Errorf("attempts = %d, want 3", m.Attempts())
	}
}

func TestConnectNoOpWhenDegraded(t *testing.T) {
	dialErr := errors.New("broker unreachable")
	dialer := &fakeDialer{results: []error{dialErr, dialErr, dialErr, dialErr, dialErr}}
	m := newTestManager(dialer.dial, testPolicy())
	m.schedule = func(d time.Duration, fn func()) { fn() }

	m.Connect(context.Background())
	if m.State() != StateDegraded {
		t.Fatalf("state = %s, want degraded", m.State())
	}

	m.Connect(context.Background())

	if dialer.calls != 5 {
		t.Errorf("dial calls after degraded re-connect = %d, want 5", dialer.calls)
	}
	if m.Attempts() != 5 {
		t.Errorf("attempts = %d, want 5", m.Attempts())
	}
}

func TestConnectNoOpWhileConnecting(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())
	m.state = StateConnecting

	m.Connect(context.Background())

	if dialer.calls != 0 {
		t.Errorf("dial calls = %d, want 0 while another connect is in flight", dialer.calls)
	}
	if m.Attempts() != 0 {
		t.Errorf("attempts = %d, want 0", m.Attempts())
	}
}

func TestConnectNoOpWhenConnected(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())

	m.Connect(context.Background())
	m.Connect(context.Background())

	if dialer.calls != 1 {
		t.Errorf("dial calls = %d, want 1", dialer.calls)
	}
	if m.Attempts() != 1 {
		t.Errorf("attempts = %d, want 1", m.Attempts())
	}
}

func TestConnectTimesOut(t *testing.T) {
	block := make(chan struct{})
	defer close(block)
	dial := func(ctx context.Context) (Sender, error) {
		<-block
		return &fakeSender{}, nil
	}

	policy := RetryPolicy{MaxAttempts: 1, InitialDelay: time.Millisecond, Factor: 1.5, MaxDelay: time.Second}
	m := NewConnectionManager(dial, 10*time.Millisecond, policy, logger.NopLogger{})

	m.Connect(context.Background())

	if m.State() != StateDegraded {
		t.Errorf("state = %s, want degraded after timeout with max_attempts=1", m.State())
	}
}

func TestMarkLost(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())
	m.Connect(context.Background())

	m.MarkLost()

	if m.State() != StateDisconnected {
		t.Fatalf("state = %s, want disconnected", m.State())
	}
	if dialer.sender.closeCnt != 1 {
		t.Errorf("sender close count = %d, want 1", dialer.sender.closeCnt)
	}
	if _, ok := m.Current(); ok {
		t.Error("Current() should report no sender after MarkLost")
	}
}

func TestMarkLostNoOpWhenNotConnected(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())

	m.MarkLost()

	if m.State() != StateDisconnected {
		t.Errorf("state = %s, want disconnected", m.State())
	}
}

func TestDisconnect(t *testing.T) {
	dialer := &fakeDialer{}
	m := newTestManager(dialer.dial, testPolicy())
	m.Connect(context.Background())

	m.Disconnect(context.Background())

	if m.State() != StateDisconnected {
		t.Fatalf("state = %s, want disconnected", m.State())
	}
	if dialer.sender.closeCnt != 1 {
		t.Errorf("sender close count = %d, want 1", dialer.sender.closeCnt)
	}

	// 再次断开为空操作
	m.Disconnect(context.Background())
	if dialer.sender.closeCnt != 1 {
		t.Errorf("sender close count after second disconnect = %d, want 1", dialer.sender.closeCnt)
	}
}
