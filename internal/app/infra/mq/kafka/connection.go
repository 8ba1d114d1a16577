package kafka

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"oms/api/internal/app/pkg/logger"
)

// ConnState 连接状态
type ConnState int

const (
	// StateDisconnected 未连接
	StateDisconnected ConnState = iota
	// StateConnecting 连接中（同一时刻最多一个在途连接）
	StateConnecting
	// StateConnected 已连接
	StateConnected
	// StateDegraded 降级（终态，不再自动重连）
	StateDegraded
)

// String 状态名
func (s ConnState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateDegraded:
		return "degraded"
	}
	return "unknown"
}

// RetryPolicy 重连退避策略
type RetryPolicy struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Factor       float64
	MaxDelay     time.Duration
}

// DelayFor 第 attempt 次失败后的退避时长
// delay = min(initialDelay * factor^(attempt-1), maxDelay)
func (p RetryPolicy) DelayFor(attempt int) time.Duration {
	delay := time.Duration(float64(p.InitialDelay) * math.Pow(p.Factor, float64(attempt-1)))
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}
	return delay
}

// ConnectionManager broker 连接状态机（状态的唯一持有者）
// 其它组件只通过公开方法读取状态，不直接改写
type ConnectionManager struct {
	dial    Dialer
	timeout time.Duration
	policy  RetryPolicy
	log     logger.Logger

	mu       sync.Mutex
	state    ConnState
	attempts int // 进程生命周期内累计，连接成功后不清零
	sender   Sender

	// 重连调度钩子，默认 time.AfterFunc，测试时可替换
	schedule func(d time.Duration, fn func())
}

// NewConnectionManager 创建连接管理器
func NewConnectionManager(dial Dialer, timeout time.Duration, policy RetryPolicy, log logger.Logger) *ConnectionManager {
	return &ConnectionManager{
		dial:    dial,
		timeout: timeout,
		policy:  policy,
		log:     log,
		state:   StateDisconnected,
		schedule: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
}

// State 当前连接状态
func (m *ConnectionManager) State() ConnState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Attempts 累计连接尝试次数
func (m *ConnectionManager) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// Current 返回当前可用的 Sender，未连接时返回 false
func (m *ConnectionManager) Current() (Sender, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateConnected || m.sender == nil {
		return nil, false
	}
	return m.sender, true
}

// Connect 发起连接，幂等
// Connected/Connecting/Degraded 状态下为空操作；失败时按退避策略调度重试，
// 达到最大尝试次数后进入降级终态，仅告警不再重试
func (m *ConnectionManager) Connect(ctx context.Context) {
	m.mu.Lock()
	if m.state == StateConnected || m.state == StateConnecting || m.state == StateDegraded {
		m.mu.Unlock()
		return
	}
	m.state = StateConnecting
	m.attempts++
	attempt := m.attempts
	m.mu.Unlock()

	m.log.Infof(ctx, "connecting to kafka (attempt %d/%d)", attempt, m.policy.MaxAttempts)

	sender, err := m.dialWithTimeout(ctx)
	if err == nil {
		m.mu.Lock()
		m.sender = sender
		m.state = StateConnected
		m.mu.Unlock()
		m.log.Infof(ctx, "connected to kafka")
		return
	}

	if attempt < m.policy.MaxAttempts {
		delay := m.policy.DelayFor(attempt)
		m.mu.Lock()
		m.state = StateDisconnected
		m.mu.Unlock()
		m.log.Errorf(ctx, "kafka connect failed: %v, retrying in %s", err, delay)
		m.schedule(delay, func() {
			m.Connect(context.Background())
		})
		return
	}

	m.mu.Lock()
	m.state = StateDegraded
	m.mu.Unlock()
	m.log.Warnf(ctx, "kafka connect failed after %d attempts, producer disabled: %v", attempt, err)
	m.log.Warnf(ctx, "the application keeps running, lifecycle events will not be published")
}

// Disconnect 优雅断开，仅在已连接时生效，关闭失败只记日志
func (m *ConnectionManager) Disconnect(ctx context.Context) {
	m.mu.Lock()
	if m.state != StateConnected {
		m.mu.Unlock()
		return
	}
	sender := m.sender
	m.sender = nil
	m.state = StateDisconnected
	m.mu.Unlock()

	if sender != nil {
		if err := sender.Close(); err != nil {
			m.log.Errorf(ctx, "close kafka producer failed: %v", err)
			return
		}
	}
	m.log.Infof(ctx, "kafka producer disconnected")
}

// MarkLost 发送失败后标记连接丢失（Connected → Disconnected）
// 后续 Publish 会重新触发连接
func (m *ConnectionManager) MarkLost() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateConnected {
		return
	}
	if m.sender != nil {
		_ = m.sender.Close()
		m.sender = nil
	}
	m.state = StateDisconnected
}

// snapshot 原子读取 (state, attempts)
func (m *ConnectionManager) snapshot() (ConnState, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, m.attempts
}

// dialWithTimeout 带超时建连，超时后迟到的连接被直接关闭
func (m *ConnectionManager) dialWithTimeout(ctx context.Context) (Sender, error) {
	dialCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	type result struct {
		sender Sender
		err    error
	}
	done := make(chan result, 1)

	go func() {
		sender, err := m.dial(dialCtx)
		done <- result{sender: sender, err: err}
	}()

	select {
	case r := <-done:
		return r.sender, r.err
	case <-dialCtx.Done():
		go func() {
			if r := <-done; r.sender != nil {
				_ = r.sender.Close()
			}
		}()
		return nil, fmt.Errorf("kafka connect timed out after %s", m.timeout)
	}
}
