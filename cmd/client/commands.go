// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-finance-advisor/internal/client"
	"github.com/MKhiriev/go-finance-advisor/internal/logger"
	"github.com/MKhiriev/go-finance-advisor/models"
)

// clientEnv holds defaults for the persistent flags.
type clientEnv struct {
	Server  string        `env:"FINANCE_API_URL" envDefault:"http://localhost:8000"`
	Token   string        `env:"FINANCE_API_TOKEN"`
	Timeout time.Duration `env:"FINANCE_API_TIMEOUT" envDefault:"60s"`
}

type options struct {
	server  string
	token   string
	timeout time.Duration
	verbose bool
}

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	defaults, err := env.ParseAs[clientEnv]()
	if err != nil {
		defaults = clientEnv{Server: "http://localhost:8000", Timeout: time.Minute}
	}

	opts := &options{}

	root := &cobra.Command{
		Use:           "finance-client",
		Short:         "Command-line client for the finance advisor API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.server, "server", "s", defaults.Server, "API address (env FINANCE_API_URL)")
	flags.StringVarP(&opts.token, "token", "t", defaults.Token, "bearer token (env FINANCE_API_TOKEN)")
	flags.DurationVar(&opts.timeout, "timeout", defaults.Timeout, "request timeout (env FINANCE_API_TIMEOUT)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log API calls to stderr")

	root.AddCommand(
		newVersionCommand(opts, buildInfo),
		newRegisterCommand(opts),
		newLoginCommand(opts),
		newTodosCommand(opts),
		newAdvisorCommand(opts),
	)

	return root
}

func (o *options) client() (client.Client, error) {
	log := logger.Nop()
	if o.verbose {
		log = logger.NewLogger("finance-client")
		log.Logger = log.Output(os.Stderr)
	}

	c, err := client.New(o.server, o.timeout, log)
	if err != nil {
		return nil, err
	}
	c.SetToken(o.token)

	return c, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ─────────────────────────────────────────────
// version
// ─────────────────────────────────────────────

func newVersionCommand(opts *options, buildInfo models.AppBuildInfo) *cobra.Command {
	var remote bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print client build info, and the server's with --remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), buildInfo.String())
			if !remote {
				return nil
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			v, err := c.ServerVersion(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Server:")
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	cmd.Flags().BoolVar(&remote, "remote", false, "also query the server version")

	return cmd
}

// ─────────────────────────────────────────────
// auth
// ─────────────────────────────────────────────

func newRegisterCommand(opts *options) *cobra.Command {
	var req models.RegisterUserRequest

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			if err = c.Register(cmd.Context(), req); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "User registered successfully")
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Email, "email", "", "account email")
	f.StringVar(&req.FirstName, "first-name", "", "first name")
	f.StringVar(&req.LastName, "last-name", "", "last name")
	f.StringVar(&req.Password, "password", "", "account password")
	for _, name := range []string{"email", "first-name", "last-name", "password"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func newLoginCommand(opts *options) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			auth, err := c.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), auth.AccessToken)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

// ─────────────────────────────────────────────
// todos
// ─────────────────────────────────────────────

func newTodosCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todos",
		Short: "Manage your todos",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List todos",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.client()
				if err != nil {
					return err
				}
				todos, err := c.ListTodos(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), todos)
			},
		},
		newTodoAddCommand(opts),
		&cobra.Command{
			Use:   "complete <id>",
			Short: "Mark a todo as completed",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				todoID, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid todo id: %w", err)
				}
				c, err := opts.client()
				if err != nil {
					return err
				}
				todo, err := c.CompleteTodo(cmd.Context(), todoID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), todo)
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a todo",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				todoID, err := uuid.Parse(args[0])
				if err != nil {
					return fmt.Errorf("invalid todo id: %w", err)
				}
				c, err := opts.client()
				if err != nil {
					return err
				}
				return c.DeleteTodo(cmd.Context(), todoID)
			},
		},
	)

	return cmd
}

func newTodoAddCommand(opts *options) *cobra.Command {
	var (
		due      string
		priority int
	)

	cmd := &cobra.Command{
		Use:   "add <description>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.TodoCreateRequest{Description: strings.Join(args, " ")}

			if due != "" {
				dueDate, err := parseDueDate(due)
				if err != nil {
					return err
				}
				req.DueDate = &dueDate
			}
			if cmd.Flags().Changed("priority") {
				p := models.Priority(priority)
				req.Priority = &p
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			todo, err := c.CreateTodo(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), todo)
		},
	}

	cmd.Flags().StringVar(&due, "due", "", "due date, ISO 8601 date or date-time")
	cmd.Flags().IntVar(&priority, "priority", 0, "priority from 0 (none) to 4 (urgent)")

	return cmd
}

func parseDueDate(s string) (time.Time, error) {
	t, err := models.ParseTimestamp(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q", s)
	}
	return t, nil
}

// ─────────────────────────────────────────────
// finance advisor
// ─────────────────────────────────────────────

func newAdvisorCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "advisor",
		Short: "Ask the finance advisor",
	}

	cmd.AddCommand(
		newAdviceCommand(opts),
		newRiskCommand(opts),
		newExplainCommand(opts),
		&cobra.Command{
			Use:   "capabilities",
			Short: "Show advisor capabilities",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.client()
				if err != nil {
					return err
				}
				caps, err := c.AdvisorCapabilities(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), caps)
			},
		},
		&cobra.Command{
			Use:   "health",
			Short: "Check advisor health",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				c, err := opts.client()
				if err != nil {
					return err
				}
				health, err := c.AdvisorHealth(cmd.Context())
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), health)
			},
		},
	)

	return cmd
}

func newAdviceCommand(opts *options) *cobra.Command {
	var temperature float64

	cmd := &cobra.Command{
		Use:   "advice <question>",
		Short: "Get financial advice",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := models.FinanceAdviceRequest{Query: strings.Join(args, " ")}
			if cmd.Flags().Changed("temperature") {
				req.Temperature = &temperature
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			resp, err := c.Advice(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printAnswer(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().Float64Var(&temperature, "temperature", 0.7, "sampling temperature from 0 to 2")

	return cmd
}

func newRiskCommand(opts *options) *cobra.Command {
	var answers map[string]string

	cmd := &cobra.Command{
		Use:   "risk",
		Short: "Assess risk tolerance from questionnaire answers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := models.RiskAssessmentRequest{Answers: make(map[string]any, len(answers))}
			for k, v := range answers {
				req.Answers[k] = v
			}

			c, err := opts.client()
			if err != nil {
				return err
			}
			resp, err := c.AssessRisk(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printAnswer(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringToStringVarP(&answers, "answer", "a", nil, "questionnaire answer as key=value, repeatable")
	_ = cmd.MarkFlagRequired("answer")

	return cmd
}

func newExplainCommand(opts *options) *cobra.Command {
	var level string

	cmd := &cobra.Command{
		Use:   "explain <concept>",
		Short: "Explain a financial concept",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client()
			if err != nil {
				return err
			}
			resp, err := c.ExplainConcept(cmd.Context(), models.ConceptExplanationRequest{
				Concept:        strings.Join(args, " "),
				KnowledgeLevel: level,
			})
			if err != nil {
				return err
			}
			return printAnswer(cmd.OutOrStdout(), resp)
		},
	}
	cmd.Flags().StringVar(&level, "level", "beginner", "beginner, intermediate or advanced")

	return cmd
}

// printAnswer prints the assistant text of the first choice.
func printAnswer(w io.Writer, resp models.ChatCompletionResponse) error {
	if len(resp.Choices) == 0 {
		return fmt.Errorf("empty answer from advisor")
	}

	_, err := fmt.Fprintln(w, resp.Choices[0].Message.Content)
	return err
}
