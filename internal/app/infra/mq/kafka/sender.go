package kafka

import (
	"context"
	"time"

	"github.com/IBM/sarama"

	"oms/api/internal/app/config"
)

// Sender 底层 broker 发送接口
type Sender interface {
	Send(topic, key, payload string) error
	Close() error
}

// Dialer 建立 broker 连接
type Dialer func(ctx context.Context) (Sender, error)

// saramaSender 基于 sarama 同步生产者的 Sender 实现
type saramaSender struct {
	producer sarama.SyncProducer
}

// NewSaramaDialer 创建 sarama 连接器
func NewSaramaDialer(cfg config.KafkaConfig) Dialer {
	return func(ctx context.Context) (Sender, error) {
		sc := sarama.NewConfig()
		sc.ClientID = cfg.ClientID
		sc.Producer.Return.Successes = true
		sc.Producer.RequiredAcks = sarama.WaitForAll
		sc.Metadata.Retry.Max = 0 // 重试由 ConnectionManager 统一调度
		sc.Net.DialTimeout = cfg.ConnectionTimeout
		if deadline, ok := ctx.Deadline(); ok {
			if remain := time.Until(deadline); remain > 0 && remain < sc.Net.DialTimeout {
				sc.Net.DialTimeout = remain
			}
		}

		producer, err := sarama.NewSyncProducer(cfg.Brokers, sc)
		if err != nil {
			return nil, err
		}
		return &saramaSender{producer: producer}, nil
	}
}

// Send 发送单条消息
func (s *saramaSender) Send(topic, key, payload string) error {
	msg := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.StringEncoder(payload),
	}
	if key != "" {
		msg.Key = sarama.StringEncoder(key)
	}

	_, _, err := s.producer.SendMessage(msg)
	return err
}

// Close 关闭生产者
func (s *saramaSender) Close() error {
	return s.producer.Close()
}
