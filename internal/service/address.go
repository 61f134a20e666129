package service

import (
	"context"

	"github.com/lmelectronica/ecommerce/internal/apperr"
	"github.com/lmelectronica/ecommerce/internal/models"
	"github.com/lmelectronica/ecommerce/internal/repo"
	"github.com/lmelectronica/ecommerce/internal/transport"
)

type AddressService struct {
	Users     *repo.UserRepo
	Addresses *repo.AddressRepo
}

func (s *AddressService) Create(ctx context.Context, username string, req transport.AddressRequest) (*models.Address, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}

	if exists, err := s.Addresses.ExistsForUser(ctx, user.ID); err != nil {
		return nil, err
	} else if exists {
		return nil, apperr.Duplicate("Address", "user", username)
	}

	address := models.Address{
		UserID:     user.ID,
		Street:     req.Street,
		Number:     req.Number,
		City:       req.City,
		PostalCode: req.PostalCode,
		Province:   req.Province,
		OtherInfo:  req.OtherInfo,
	}
	if err := s.Addresses.Create(ctx, &address); err != nil {
		return nil, err
	}
	return &address, nil
}

func (s *AddressService) GetByUser(ctx context.Context, username string) (*models.Address, error) {
	user, err := s.Users.FindByUsername(ctx, username)
	if err != nil {
		return nil, orNotFound(err, "User", username)
	}

	address, err := s.Addresses.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, orNotFound(err, "Address", username)
	}
	return address, nil
}

func (s *AddressService) Update(ctx context.Context, username string, req transport.UpdateAddressRequest) (*models.Address, error) {
	address, err := s.GetByUser(ctx, username)
	if err != nil {
		return nil, err
	}

	if req.Street != nil {
		address.Street = *req.Street
	}
	if req.Number != nil {
		address.Number = *req.Number
	}
	if req.City != nil {
		address.City = *req.City
	}
	if req.PostalCode != nil {
		address.PostalCode = *req.PostalCode
	}
	if req.Province != nil {
		address.Province = *req.Province
	}
	if req.OtherInfo != nil {
		address.OtherInfo = *req.OtherInfo
	}

	if err := s.Addresses.Save(ctx, address); err != nil {
		return nil, err
	}
	return address, nil
}

func (s *AddressService) Delete(ctx context.Context, username string) error {
	address, err := s.GetByUser(ctx, username)
	if err != nil {
		return err
	}
	return s.Addresses.Delete(ctx, address)
}
