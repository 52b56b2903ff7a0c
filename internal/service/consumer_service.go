package service

import (
	"context"
	"encoding/json"
	"log"

	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/repository/contract"
	"laptop-advisor-be/internal/repository/specification"
	"laptop-advisor-be/pkg/classifier"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	laptopRepo contract.LaptopRepository
	classifier *classifier.Classifier
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	laptopRepo contract.LaptopRepository,
	cls *classifier.Classifier,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		laptopRepo: laptopRepo,
		classifier: cls,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ClassifyLaptopMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal classify message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Classifying features for LaptopId: %s", payload.LaptopId)

	laptop, err := cs.laptopRepo.FindOne(ctx, specification.ByID{ID: payload.LaptopId})
	if err != nil {
		log.Printf("[ERROR] Failed to get laptop %s: %v", payload.LaptopId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if laptop == nil {
		log.Printf("[ERROR] Laptop not found: %s", payload.LaptopId)
		msg.Ack() // Row deleted? Ack.
		return
	}

	features, err := cs.classifier.ClassifyFeatures(ctx, classifier.SpecSheet{
		Brand:       laptop.Brand,
		Model:       laptop.ModelName,
		CPU:         laptop.Core,
		ClockSpeed:  laptop.ClockSpeed,
		RAM:         laptop.RamSize,
		Storage:     laptop.StorageType,
		DisplayType: laptop.DisplayType,
		DisplaySize: laptop.DisplaySize,
		GPU:         laptop.GraphicsProcessor,
		Resolution:  laptop.ScreenResolution,
		Weight:      laptop.LaptopWeight,
		Battery:     laptop.AverageBatteryLife,
		Description: laptop.Description,
	})
	if err != nil {
		log.Printf("[ERROR] Failed to classify laptop %s: %v", payload.LaptopId, err)
		msg.Nack()
		return
	}

	laptop.Features = features
	if err := cs.laptopRepo.Update(ctx, laptop); err != nil {
		log.Printf("[ERROR] Failed to store features for laptop %s: %v", payload.LaptopId, err)
		msg.Nack()
		return
	}

	log.Printf("[SUCCESS] Laptop classified: %s", payload.LaptopId)
	msg.Ack()
}
