package company

import (
	"context"
	"testing"
	"time"

	"github.com/faena-labs/faena-backend-go/internal/domain/company"
	"github.com/faena-labs/faena-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompanyRepo struct {
	mock.Mock
}

func (m *mockCompanyRepo) Create(ctx context.Context, c company.Company) (company.Company, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *mockCompanyRepo) GetByID(ctx context.Context, id int64) (company.Company, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(company.Company), args.Error(1)
}

func (m *mockCompanyRepo) List(ctx context.Context) ([]company.Company, error) {
	args := m.Called(ctx)
	return args.Get(0).([]company.Company), args.Error(1)
}

func (m *mockCompanyRepo) Update(ctx context.Context, c company.Company) error {
	return m.Called(ctx, c).Error(0)
}

func (m *mockCompanyRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func ptr(s string) *string { return &s }

func TestCreate_ParsesDates(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c company.Company) bool {
		return c.Contract == "Fundo El Roble" &&
			c.AwardedOn.Equal(time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)) &&
			c.WorkEndsOn != nil && c.WorkEndsOn.Month() == time.April &&
			c.Documents == nil
	})).Return(company.Company{ID: 2, Contract: "Fundo El Roble"}, nil)

	res, err := NewCompanyService(repo).Create(context.Background(), company.CreateCompanyRequest{
		Contract:   " Fundo El Roble ",
		AwardedOn:  "2025-01-15",
		WorkEndsOn: ptr("2025-04-30"),
		Documents:  ptr(" "),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2), res.ID)
	repo.AssertExpectations(t)
}

func TestCreate_RequiresContractAndDate(t *testing.T) {
	repo := new(mockCompanyRepo)

	_, err := NewCompanyService(repo).Create(context.Background(), company.CreateCompanyRequest{Contract: "Fundo"})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "Contrato y fecha de adjudicación son obligatorios", verrs.First())
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDelete_InUse(t *testing.T) {
	repo := new(mockCompanyRepo)
	repo.On("Delete", mock.Anything, int64(4)).Return(company.ErrCompanyInUse)

	err := NewCompanyService(repo).Delete(context.Background(), 4)

	assert.ErrorIs(t, err, company.ErrCompanyInUse)
}
