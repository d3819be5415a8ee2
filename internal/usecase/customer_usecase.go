package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain/model"
	repo "backoffice/internal/repository"
	"backoffice/internal/validator"

	"go.uber.org/zap"
)

// パスワードの最小文字数
const minPasswordLength = 8

// CustomerUsecase は顧客（とその認証ユーザー）の管理。
type CustomerUsecase struct {
	tx        repo.TransactionManager
	users     repo.UserRepository
	customers repo.CustomerRepository
	hasher    PasswordHasher
	logger    *zap.Logger
}

// DI
func NewCustomerUsecase(
	tx repo.TransactionManager,
	users repo.UserRepository,
	customers repo.CustomerRepository,
	hasher PasswordHasher,
	logger *zap.Logger,
) *CustomerUsecase {
	return &CustomerUsecase{
		tx:        tx,
		users:     users,
		customers: customers,
		hasher:    hasher,
		logger:    orNop(logger),
	}
}

type RegisterCustomerInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string

	Address    string
	City       string
	State      model.StateCode
	PostalCode string
	Phone      *string
	BirthDate  *time.Time
}

type UpdateCustomerInput struct {
	Address    string
	City       string
	State      model.StateCode
	PostalCode string
	Phone      *string
	BirthDate  *time.Time
}

// ユーザー・顧客・空のカートを1トランザクションで作る
func (u *CustomerUsecase) RegisterCustomer(ctx context.Context, in RegisterCustomerInput) (model.Customer, error) {
	user := model.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		IsActive:  true,
	}
	if err := validator.Struct(user); err != nil {
		return model.Customer{}, validationError(err)
	}
	if err := validator.Var("password", in.Password, "required,min="+strconv.Itoa(minPasswordLength)); err != nil {
		return model.Customer{}, validationError(err)
	}

	customer := buildCustomer(UpdateCustomerInput{
		Address:    in.Address,
		City:       in.City,
		State:      in.State,
		PostalCode: in.PostalCode,
		Phone:      in.Phone,
		BirthDate:  in.BirthDate,
	})
	if err := validator.Struct(customer); err != nil {
		return model.Customer{}, validationError(err)
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.logger.Error("hash password failed", zap.Error(err))
		return model.Customer{}, &AppError{Code: CodeInternal, Message: "hash error", Err: err}
	}
	user.PasswordHash = hashed

	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		createdUser, err := r.Users().Create(ctx, user)
		if err != nil {
			if errors.Is(err, repo.ErrDuplicate) {
				return &AppError{Code: CodeConflict, Field: "email", Message: "email already exists", Err: err}
			}
			return repoError(u.logger, "create user", err)
		}

		customer.UserID = createdUser.ID
		created, err := r.Customers().Create(ctx, customer)
		if err != nil {
			return repoError(u.logger, "create customer", err, zap.Int64("user_id", createdUser.ID))
		}

		cart, err := r.Carts().Create(ctx, model.Cart{CustomerID: created.ID})
		if err != nil {
			return repoError(u.logger, "create cart", err, zap.Int64("customer_id", created.ID))
		}

		created.User = &createdUser
		created.Cart = &cart
		customer = created
		return nil
	})
	if err != nil {
		return model.Customer{}, err
	}

	u.logger.Info("customer registered", zap.Int64("customer_id", customer.ID), zap.Int64("user_id", customer.UserID))
	return customer, nil
}

// 住所・連絡先を置き換える
func (u *CustomerUsecase) UpdateCustomer(ctx context.Context, id int64, in UpdateCustomerInput) (model.Customer, error) {
	c := buildCustomer(in)
	c.ID = id
	if err := validator.Struct(c); err != nil {
		return model.Customer{}, validationError(err)
	}

	if err := u.customers.Update(ctx, c); err != nil {
		return model.Customer{}, repoError(u.logger, "update customer", err, zap.Int64("customer_id", id))
	}
	return u.GetCustomer(ctx, id)
}

// ユーザー付き
func (u *CustomerUsecase) GetCustomer(ctx context.Context, id int64) (model.Customer, error) {
	c, err := u.customers.FindByID(ctx, id)
	if err != nil {
		return model.Customer{}, repoError(u.logger, "get customer", err, zap.Int64("customer_id", id))
	}
	return c, nil
}

func (u *CustomerUsecase) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	list, err := u.customers.List(ctx)
	if err != nil {
		return []model.Customer{}, repoError(u.logger, "list customers", err)
	}
	return list, nil
}

// 注文・レビュー・カートも消える（ユーザーは残る）
func (u *CustomerUsecase) DeleteCustomer(ctx context.Context, id int64) error {
	if err := u.customers.Delete(ctx, id); err != nil {
		return repoError(u.logger, "delete customer", err, zap.Int64("customer_id", id))
	}
	u.logger.Info("customer deleted", zap.Int64("customer_id", id))
	return nil
}

// 顧客ごと消える
func (u *CustomerUsecase) DeleteUser(ctx context.Context, userID int64) error {
	if err := u.users.Delete(ctx, userID); err != nil {
		return repoError(u.logger, "delete user", err, zap.Int64("user_id", userID))
	}
	u.logger.Info("user deleted", zap.Int64("user_id", userID))
	return nil
}

func buildCustomer(in UpdateCustomerInput) model.Customer {
	return model.Customer{
		Address:    strings.TrimSpace(in.Address),
		City:       strings.TrimSpace(in.City),
		State:      model.StateCode(strings.ToUpper(strings.TrimSpace(string(in.State)))),
		PostalCode: strings.TrimSpace(in.PostalCode),
		Phone:      in.Phone,
		BirthDate:  in.BirthDate,
	}
}
