package kafka

import (
	"context"
	"fmt"

	"oms/api/internal/app/pkg/logger"
)

// Producer Kafka 事件发布器
// 尽力而为、至多一次：失败时丢弃消息并返回结果值供调用方记录，
// 没有外发队列，丢掉的消息即永久丢失
type Producer struct {
	conn *ConnectionManager
	log  logger.Logger
}

// NewProducer 创建事件发布器
func NewProducer(conn *ConnectionManager, log logger.Logger) *Producer {
	return &Producer{
		conn: conn,
		log:  log,
	}
}

// Publish 发布消息到指定主题
// 未连接时顺带触发一次连接（受降级/次数门限约束），仍未连上则丢弃；
// 已连接但发送失败时标记连接丢失，下次发布会重新触发连接。
// 返回值仅作为结果记录，调用方不应据此重试或失败
func (p *Producer) Publish(ctx context.Context, topic string, msg OutboundMessage) error {
	key, payload, err := msg.encode()
	if err != nil {
		return fmt.Errorf("marshal message for topic %s failed: %w", topic, err)
	}

	state, attempts := p.conn.snapshot()
	if state != StateConnected {
		if state == StateDisconnected && attempts < p.conn.policy.MaxAttempts {
			p.conn.Connect(ctx)
		}
	}

	sender, ok := p.conn.Current()
	if !ok {
		return fmt.Errorf("message for topic %s dropped: kafka is not connected", topic)
	}

	if err := sender.Send(topic, key, payload); err != nil {
		p.conn.MarkLost()
		return fmt.Errorf("send message to topic %s failed, message dropped: %w", topic, err)
	}

	p.log.Debugf(ctx, "message sent to topic %s", topic)
	return nil
}
