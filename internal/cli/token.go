package cli

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/Kinimary/belwest/internal/entity"
)

type TokenIssuer interface {
	Issue(c entity.Caller, ttl time.Duration) (string, error)
}

// NewTokenCommand issues a bearer token signed with the service secret. issuer is
// nil when no secret is configured.
func NewTokenCommand(issuer TokenIssuer, out io.Writer) *cobra.Command {
	var (
		userID int64
		role   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the permissions service",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if issuer == nil {
				return errors.New("JWT_SECRET is not set")
			}

			if userID <= 0 {
				return errors.New("--user must be positive")
			}

			r, err := entity.ParseRole(role)
			if err != nil {
				return err
			}

			raw, err := issuer.Issue(entity.Caller{UserID: userID, Role: r}, ttl)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, raw)

			return err
		},
	}

	cmd.Flags().Int64Var(&userID, "user", 0, "user id put into the token")
	cmd.Flags().StringVar(&role, "role", string(entity.RoleAdmin), "role put into the token")
	cmd.Flags().DurationVar(&ttl, "ttl", 12*time.Hour, "token lifetime")

	return cmd
}
