package mdevent

import (
	"context"
	"time"

	"oms/api/internal/app/domains/entity/etevent"
	"oms/api/internal/app/domains/entity/etorder"
	"oms/api/internal/app/infra/mq/kafka"
)

// Publisher 消息发布接口（kafka.Producer 实现）
type Publisher interface {
	Publish(ctx context.Context, topic string, msg kafka.OutboundMessage) error
}

// EventModule 订单生命周期事件模块
// 所有发布均为尽力而为：返回值只供调用方记录，不代表投递保证
type EventModule struct {
	publisher Publisher
}

// NewEventModule 创建事件模块
func NewEventModule(publisher Publisher) *EventModule {
	return &EventModule{
		publisher: publisher,
	}
}

// PublishOrderCreated 发布订单创建事件
func (m *EventModule) PublishOrderCreated(ctx context.Context, order *etorder.Order) error {
	event := etevent.NewOrderCreated(order)
	return m.publisher.Publish(ctx, etevent.TopicOrderCreated, kafka.NewJSONMessage(event))
}

// PublishOrderStatusUpdated 发布订单状态变更事件
func (m *EventModule) PublishOrderStatusUpdated(ctx context.Context, orderID string, previous, current etorder.OrderStatus, updatedAt time.Time) error {
	event := etevent.NewOrderStatusUpdated(orderID, previous, current, updatedAt)
	return m.publisher.Publish(ctx, etevent.TopicOrderStatusUpdated, kafka.NewJSONMessage(event))
}

// PublishOrderDeleted 发布订单删除事件
func (m *EventModule) PublishOrderDeleted(ctx context.Context, orderID string) error {
	event := etevent.NewOrderDeleted(orderID)
	return m.publisher.Publish(ctx, etevent.TopicOrderDeleted, kafka.NewJSONMessage(event))
}
