// rules.go - Rule sets for products, reviews and users

package validation

import (
	"context"
	"fmt"
)

// Existence is satisfied by repositories that can tell whether an id
// resolves in their default scope.
type Existence interface {
	Exists(ctx context.Context, id uint) (bool, error)
}

// EmailOwnership is satisfied by the user repository.
type EmailOwnership interface {
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
}

func ProductRules() Rules {
	return Rules{
		{Name: "name", Kind: String, Required: true, Constraint: "max=255"},
		{Name: "description", Kind: String, Nullable: true},
		{Name: "price", Kind: Number, Required: true, Constraint: "min=0"},
	}
}

func ReviewRules(users, products Existence) Rules {
	return Rules{
		{Name: "user_id", Kind: Integer, Required: true, Check: exists(users, "user_id")},
		{Name: "product_id", Kind: Integer, Required: true, Check: exists(products, "product_id")},
		{Name: "rating", Kind: Integer, Required: true, Constraint: "min=1,max=5"},
		{Name: "comment", Kind: String, Nullable: true},
	}
}

// UserRules returns the user rule set. exceptID is the id of the user
// being updated, or 0 on create.
func UserRules(users EmailOwnership, exceptID uint) Rules {
	return Rules{
		{Name: "name", Kind: String, Required: true, Constraint: "max=255"},
		{Name: "email", Kind: String, Required: true, Constraint: "email,max=255", Check: unique(users, exceptID)},
		{Name: "password", Kind: String, Required: true, Constraint: "min=8"},
		{Name: "is_admin", Kind: Boolean},
	}
}

func exists(repo Existence, field string) Check {
	return func(ctx context.Context, value any) (string, error) {
		id, ok := value.(int64)
		if !ok || id <= 0 {
			return fmt.Sprintf("The selected %s is invalid.", label(field)), nil
		}
		found, err := repo.Exists(ctx, uint(id))
		if err != nil {
			return "", err
		}
		if !found {
			return fmt.Sprintf("The selected %s is invalid.", label(field)), nil
		}
		return "", nil
	}
}

func unique(users EmailOwnership, exceptID uint) Check {
	return func(ctx context.Context, value any) (string, error) {
		email, _ := value.(string)
		taken, err := users.EmailTaken(ctx, email, exceptID)
		if err != nil {
			return "", err
		}
		if taken {
			return "The email has already been taken.", nil
		}
		return "", nil
	}
}
