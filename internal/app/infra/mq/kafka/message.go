package kafka

import "encoding/json"

// Keyer 能提供消息键的载荷
type Keyer interface {
	MessageKey() string
}

// OutboundMessage 出站消息
// 两种形态：调用方已序列化好的原始字符串，或由发布器做 JSON 序列化的结构体。
// 形态在构造时固定，发布时不再做运行时类型推断
type OutboundMessage struct {
	key   string
	raw   string
	value interface{}
	isRaw bool
}

// NewRawMessage 创建原始字符串消息（载荷透传）
func NewRawMessage(key, payload string) OutboundMessage {
	return OutboundMessage{key: key, raw: payload, isRaw: true}
}

// NewJSONMessage 创建结构化消息（发布时整体 JSON 序列化）
// 消息键取载荷的 MessageKey()（通常为订单ID），没有则省略
func NewJSONMessage(value interface{}) OutboundMessage {
	return OutboundMessage{value: value}
}

// NewKeyedJSONMessage 创建带显式键的结构化消息
func NewKeyedJSONMessage(key string, value interface{}) OutboundMessage {
	return OutboundMessage{key: key, value: value}
}

// encode 编码为 (key, payload)
func (m OutboundMessage) encode() (string, string, error) {
	key := m.key
	if m.isRaw {
		return key, m.raw, nil
	}

	if key == "" {
		if k, ok := m.value.(Keyer); ok {
			key = k.MessageKey()
		}
	}

	payload, err := json.Marshal(m.value)
	if err != nil {
		return "", "", err
	}
	return key, string(payload), nil
}
