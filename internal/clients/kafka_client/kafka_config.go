package kafka_client

import "github.com/spacesedan/reviewlens/config"

type KafkaConfig struct {
	Broker       string
	GroupID      string
	Topic        string
	ResultsTopic string
}

func GetKafkaConfig(s *config.Settings) KafkaConfig {
	return KafkaConfig{
		Broker:       s.KafkaBroker,
		GroupID:      s.KafkaGroupID,
		Topic:        s.RequestTopic,
		ResultsTopic: s.ResultsTopic,
	}
}
