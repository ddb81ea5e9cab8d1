package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/domain/users"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/apperr"
	"github.com/jaladitrilokchand/ETSamCo-sub004/internal/pkg/report"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func newUserCommands(rt *Runtime) *cobra.Command {
	return group("user", "Manage users and their roles",
		userAddVerb().Command(rt),
		userUpdateVerb().Command(rt),
		userShowVerb().Command(rt),
	)
}

func parseRoles(value string) ([]users.Role, error) {
	var roles []users.Role
	for _, item := range splitCSV(value) {
		r, ok := users.ParseRole(item)
		if !ok {
			return nil, apperr.InvalidInput("invalid role %q: expected CCB_APPROVER, ADMIN or SYSTEM", item)
		}
		roles = append(roles, r)
	}
	return roles, nil
}

func writeUser(w *report.Writer, u *users.User) {
	roles := make([]string, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = string(r)
	}
	w.Fields(
		report.F("Login", u.Login),
		report.F("Name", u.Name),
		report.F("Email", u.Email),
		report.F("Roles", strings.Join(roles, ", ")),
		report.F("Active", u.Active),
		report.F("Updated", report.Time(u.UpdatedAt)),
	)
}

func userAddVerb() Verb[*users.User, *users.User] {
	return Verb[*users.User, *users.User]{
		Use:     "add",
		Short:   "Register a user",
		Example: "  etree-cli user add -l jdoe -n 'Jane Doe' --roles ccb_approver",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagLogin, "l", "", "Intranet login")
			fs.StringP(flagName, "n", "", "Full name")
			fs.String("email", "", "Email address")
			fs.String("roles", "", "Comma separated roles")
		},
		Parse: func(cmd *cobra.Command) (*users.User, error) {
			u := &users.User{Active: true}
			var err error
			if u.Login, err = requireString(cmd, flagLogin); err != nil {
				return nil, err
			}
			if u.Name, err = requireString(cmd, flagName); err != nil {
				return nil, err
			}
			u.Email, _ = optionalString(cmd, "email")
			rolesValue, _ := optionalString(cmd, "roles")
			roles, err := parseRoles(rolesValue)
			if err != nil {
				return nil, err
			}
			u.SetRoles(roles)
			return u, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, u *users.User) (*users.User, error) {
			return env.Users.Add(ctx, u)
		},
		Report: func(w *report.Writer, _ Invocation, u *users.User) ExitCode {
			w.Pass("User %s registered", u.Login)
			writeUser(w, u)
			return ExitOK
		},
	}
}

type userUpdateInput struct {
	login  string
	update *users.UserUpdate
}

func userUpdateVerb() Verb[userUpdateInput, *users.User] {
	return Verb[userUpdateInput, *users.User]{
		Use:   "update",
		Short: "Change a user's details, roles or active flag",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagLogin, "l", "", "Intranet login")
			fs.StringP(flagName, "n", "", "New full name")
			fs.String("email", "", "New email address")
			fs.String("add-roles", "", "Comma separated roles to grant")
			fs.String("remove-roles", "", "Comma separated roles to revoke")
			fs.Bool("active", true, "Whether the user is active")
		},
		Parse: func(cmd *cobra.Command) (userUpdateInput, error) {
			var in userUpdateInput
			var err error
			if in.login, err = requireString(cmd, flagLogin); err != nil {
				return in, err
			}
			up := &users.UserUpdate{}
			if up.Name, err = changedString(cmd, flagName); err != nil {
				return in, err
			}
			if up.Email, err = changedString(cmd, "email"); err != nil {
				return in, err
			}
			add, _ := optionalString(cmd, "add-roles")
			if up.AddRoles, err = parseRoles(add); err != nil {
				return in, err
			}
			remove, _ := optionalString(cmd, "remove-roles")
			if up.RemoveRoles, err = parseRoles(remove); err != nil {
				return in, err
			}
			if cmd.Flags().Changed("active") {
				active, _ := cmd.Flags().GetBool("active")
				up.Active = &active
			}
			if up.Name == nil && up.Email == nil && up.Active == nil && len(up.AddRoles) == 0 && len(up.RemoveRoles) == 0 {
				return in, &StatusError{Code: ExitNotFound, Err: fmt.Errorf("nothing to update for user %s", in.login)}
			}
			in.update = up
			return in, nil
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, in userUpdateInput) (*users.User, error) {
			return env.Users.Update(ctx, in.login, in.update)
		},
		Report: func(w *report.Writer, _ Invocation, u *users.User) ExitCode {
			w.Pass("User %s updated", u.Login)
			writeUser(w, u)
			return ExitOK
		},
	}
}

func userShowVerb() Verb[string, *users.User] {
	return Verb[string, *users.User]{
		Use:   "show",
		Short: "Show a user",
		Flags: func(fs *pflag.FlagSet) {
			fs.StringP(flagLogin, "l", "", "Intranet login")
		},
		Parse: func(cmd *cobra.Command) (string, error) {
			return requireString(cmd, flagLogin)
		},
		Execute: func(ctx context.Context, env *Env, _ Invocation, login string) (*users.User, error) {
			return env.Users.Get(ctx, login)
		},
		Report: func(w *report.Writer, _ Invocation, u *users.User) ExitCode {
			w.Heading("user " + u.Login)
			writeUser(w, u)
			return ExitOK
		},
	}
}
