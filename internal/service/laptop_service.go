package service

import (
	"context"
	"encoding/json"
	"time"

	"laptop-advisor-be/internal/dto"
	"laptop-advisor-be/internal/entity"
	"laptop-advisor-be/internal/pkg/logger"
	"laptop-advisor-be/internal/repository/contract"
	"laptop-advisor-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ILaptopService interface {
	List(ctx context.Context, brand string) ([]*dto.LaptopResponse, error)
	Create(ctx context.Context, req *dto.CreateLaptopRequest) (*dto.LaptopResponse, error)
	Classify(ctx context.Context, id uuid.UUID) error
}

type laptopService struct {
	laptopRepo       contract.LaptopRepository
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewLaptopService(
	laptopRepo contract.LaptopRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ILaptopService {
	return &laptopService{
		laptopRepo:       laptopRepo,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *laptopService) List(ctx context.Context, brand string) ([]*dto.LaptopResponse, error) {
	specs := []specification.Specification{specification.OrderBy{Field: "brand"}}
	if brand != "" {
		specs = append(specs, specification.BrandEquals{Brand: brand})
	}

	laptops, err := s.laptopRepo.FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.LaptopResponse, len(laptops))
	for i, laptop := range laptops {
		res[i] = toLaptopResponse(laptop)
	}
	return res, nil
}

func (s *laptopService) Create(ctx context.Context, req *dto.CreateLaptopRequest) (*dto.LaptopResponse, error) {
	laptop := entity.Laptop{
		Id:                 uuid.New(),
		Brand:              req.Brand,
		ModelName:          req.ModelName,
		Core:               req.Core,
		CpuManufacturer:    req.CpuManufacturer,
		ClockSpeed:         req.ClockSpeed,
		RamSize:            req.RamSize,
		StorageType:        req.StorageType,
		DisplayType:        req.DisplayType,
		DisplaySize:        req.DisplaySize,
		GraphicsProcessor:  req.GraphicsProcessor,
		ScreenResolution:   req.ScreenResolution,
		OS:                 req.OS,
		LaptopWeight:       req.LaptopWeight,
		SpecialFeatures:    req.SpecialFeatures,
		Warranty:           req.Warranty,
		AverageBatteryLife: req.AverageBatteryLife,
		Price:              req.Price,
		Description:        req.Description,
		CreatedAt:          time.Now(),
	}

	if err := s.laptopRepo.Create(ctx, &laptop); err != nil {
		return nil, err
	}

	// Feature grading runs async so catalog writes stay fast.
	if err := s.enqueueClassification(ctx, laptop.Id); err != nil {
		s.logger.Warn("laptop", "failed to enqueue classification", map[string]interface{}{
			"laptop_id": laptop.Id,
			"error":     err.Error(),
		})
	}

	return toLaptopResponse(&laptop), nil
}

func (s *laptopService) Classify(ctx context.Context, id uuid.UUID) error {
	laptop, err := s.laptopRepo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return err
	}
	if laptop == nil {
		return ErrLaptopNotFound
	}
	return s.enqueueClassification(ctx, id)
}

func (s *laptopService) enqueueClassification(ctx context.Context, id uuid.UUID) error {
	payload, err := json.Marshal(dto.ClassifyLaptopMessage{LaptopId: id})
	if err != nil {
		return err
	}
	return s.publisherService.Publish(ctx, payload)
}

func toLaptopResponse(e *entity.Laptop) *dto.LaptopResponse {
	return &dto.LaptopResponse{
		Id:                 e.Id,
		Brand:              e.Brand,
		ModelName:          e.ModelName,
		Core:               e.Core,
		CpuManufacturer:    e.CpuManufacturer,
		ClockSpeed:         e.ClockSpeed,
		RamSize:            e.RamSize,
		StorageType:        e.StorageType,
		DisplayType:        e.DisplayType,
		DisplaySize:        e.DisplaySize,
		GraphicsProcessor:  e.GraphicsProcessor,
		ScreenResolution:   e.ScreenResolution,
		OS:                 e.OS,
		LaptopWeight:       e.LaptopWeight,
		SpecialFeatures:    e.SpecialFeatures,
		Warranty:           e.Warranty,
		AverageBatteryLife: e.AverageBatteryLife,
		Price:              e.Price,
		Description:        e.Description,
		Features:           e.Features,
		CreatedAt:          e.CreatedAt,
	}
}
