package order

import (
	"github.com/andreasstove999/ecommerce-system/ordertool/internal/config"
)

// Service runs the calculate and validate workflows on raw payload bytes.
type Service struct {
	calc      *Calculator
	validator *Validator
}

func NewService(p config.Pricing) (*Service, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	calc := NewCalculator(p)
	return &Service{calc: calc, validator: NewValidator(calc)}, nil
}

func (s *Service) Calculate(data []byte) (Calculation, error) {
	doc, err := Load(data)
	if err != nil {
		return Calculation{}, err
	}

	o, err := FromDocument(doc)
	if err != nil {
		return Calculation{}, err
	}

	return s.calc.Calculate(o.Items), nil
}

func (s *Service) Validate(data []byte) (Validation, error) {
	doc, err := Load(data)
	if err != nil {
		return invalid(err), err
	}
	return s.validator.Validate(doc)
}
