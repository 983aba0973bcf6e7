package commands_test

import (
	"errors"
	"testing"
	"time"

	"jobboard/internal/core/application/usecases/commands"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/core/domain/model/user"
	"jobboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func storedUser(t *testing.T, username, password string) *user.User {
	t.Helper()
	hash, err := user.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	u, err := user.NewUser(kernel.NewUUID(), username, hash, user.Profile{}, time.Now())
	require.NoError(t, err)
	return u
}

func TestSignupUserCommandHandler_Handle(t *testing.T) {
	t.Run("stores hashed account and issues token", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSignupUserCommand("alice", "s3cret", user.Profile{Name: "Alice"}, time.Now())
		require.NoError(t, err)

		var saved *user.User
		repo := new(MockUserRepository)
		repo.On("Add", ctx, mock.AnythingOfType("*user.User")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*user.User) }).
			Return(nil).Once()
		factory, _ := userTx(repo)
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", mock.AnythingOfType("kernel.UUID")).Return("signed-token", nil).Once()

		h := commands.NewSignupUserCommandHandler(factory, tokens, bcrypt.MinCost)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "alice", result.Username)
		assert.Equal(t, "signed-token", result.Token)
		require.NotNil(t, saved)
		assert.True(t, saved.ID().IsEqual(result.UserID))
		assert.True(t, saved.Authenticate("s3cret"))
		assert.NotEqual(t, "s3cret", saved.Password().String())
		tokens.AssertExpectations(t)
	})

	t.Run("duplicate username surfaces conflict and issues no token", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewSignupUserCommand("alice", "s3cret", user.Profile{}, time.Now())
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("Add", ctx, mock.Anything).Return(errs.NewObjectAlreadyExistsError("username", "alice")).Once()
		factory, _ := userTx(repo)
		tokens := new(MockTokenIssuer)

		h := commands.NewSignupUserCommandHandler(factory, tokens, bcrypt.MinCost)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("invalid username never reaches storage", func(t *testing.T) {
		cmd, err := commands.NewSignupUserCommand("al ice", "s3cret", user.Profile{}, time.Now())
		require.NoError(t, err)
		factory := new(MockUserUoWFactory)

		h := commands.NewSignupUserCommandHandler(factory, new(MockTokenIssuer), bcrypt.MinCost)
		_, err = h.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		factory.AssertNotCalled(t, "Create")
	})
}

func TestNewSignupUserCommand(t *testing.T) {
	_, err := commands.NewSignupUserCommand("", "", user.Profile{}, time.Time{})

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "username")
	assert.Contains(t, err.Error(), "password")
}

func TestLoginUserCommandHandler_Handle(t *testing.T) {
	t.Run("valid credentials issue a token", func(t *testing.T) {
		ctx := t.Context()
		account := storedUser(t, "alice", "s3cret")
		cmd, err := commands.NewLoginUserCommand(" alice ", "s3cret")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "alice").Return(account, nil).Once()
		factory, _ := userTx(repo)
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", account.ID()).Return("signed-token", nil).Once()

		h := commands.NewLoginUserCommandHandler(factory, tokens)
		result, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed-token", result.Token)
		assert.True(t, result.UserID.IsEqual(account.ID()))
	})

	t.Run("wrong password", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewLoginUserCommand("alice", "guess")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "alice").Return(storedUser(t, "alice", "s3cret"), nil).Once()
		factory, _ := userTx(repo)
		tokens := new(MockTokenIssuer)

		h := commands.NewLoginUserCommandHandler(factory, tokens)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
		tokens.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("unknown user looks like wrong password", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewLoginUserCommand("ghost", "guess")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "ghost").Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once()
		factory, _ := userTx(repo)

		h := commands.NewLoginUserCommandHandler(factory, new(MockTokenIssuer))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("storage failure is not masked", func(t *testing.T) {
		ctx := t.Context()
		cmd, err := commands.NewLoginUserCommand("alice", "s3cret")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByUsername", ctx, "alice").Return(nil, errors.New("connection reset")).Once()
		factory, _ := userTx(repo)

		h := commands.NewLoginUserCommandHandler(factory, new(MockTokenIssuer))
		_, err = h.Handle(ctx, cmd)

		require.EqualError(t, err, "connection reset")
		require.NotErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("blank fields are required", func(t *testing.T) {
		_, err := commands.NewLoginUserCommand("  ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
