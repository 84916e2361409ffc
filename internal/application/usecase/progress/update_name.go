package progress

import (
	"context"

	"github.com/contacomigo/backend/internal/application/engine"
	"github.com/contacomigo/backend/internal/domain/entity"
)

// UpdateNameInput represents the input for renaming the user.
type UpdateNameInput struct {
	Name string
}

// UpdateNameOutput represents the output of renaming the user.
type UpdateNameOutput struct {
	User *entity.User
}

// UpdateNameUseCase changes the name shown in the feed.
type UpdateNameUseCase struct {
	engine *engine.Engine
}

// NewUpdateNameUseCase creates a new UpdateNameUseCase instance.
func NewUpdateNameUseCase(eng *engine.Engine) *UpdateNameUseCase {
	return &UpdateNameUseCase{engine: eng}
}

// Execute renames the user.
func (uc *UpdateNameUseCase) Execute(ctx context.Context, input UpdateNameInput) (*UpdateNameOutput, error) {
	user, err := uc.engine.UpdateUserName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	return &UpdateNameOutput{User: user}, nil
}
