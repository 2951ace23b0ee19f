package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	intconfig "rescuerehab/internal/config"
	"rescuerehab/internal/db"
	"rescuerehab/internal/mailer"
	"rescuerehab/internal/services"
	"rescuerehab/internal/utils"
)

func loadEnv(cmd *cobra.Command) intconfig.Env {
	files, _ := cmd.Flags().GetStringSlice("env-file")
	env := intconfig.LoadEnv(files...)
	utils.InitLogger(env.AppEnv)
	return env
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create missing tables",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := loadEnv(cmd)
			conn, err := intconfig.ConnectDB(env)
			if err != nil {
				return err
			}
			defer intconfig.CloseDB()

			if err := db.Migrate(cmd.Context(), conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "schema is up to date")
			return nil
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo city, shelter, animals and events into an empty database",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := loadEnv(cmd)
			conn, err := intconfig.ConnectDB(env)
			if err != nil {
				return err
			}
			defer intconfig.CloseDB()

			if err := db.Migrate(cmd.Context(), conn); err != nil {
				return err
			}
			seeded, err := db.Seed(cmd.Context(), conn)
			if err != nil {
				return err
			}
			if !seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "seed data already present, nothing to do")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "seed data inserted")
			return nil
		},
	}
}

func hashPasswordCmd() *cobra.Command {
	var cost int
	cmd := &cobra.Command{
		Use:   "hash-password [password]",
		Short: "Print a bcrypt hash for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), cost)
			if err != nil {
				return fmt.Errorf("hash password: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", bcrypt.DefaultCost, "bcrypt cost")
	return cmd
}

func signPaymentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign-payment [order-id] [payment-id]",
		Short: "Compute the checkout signature for a test verify call",
		Long: `Computes the hex HMAC-SHA256 the payment provider would send for the
given order and payment ids, using RAZORPAY_KEY_SECRET.

Example:
  rescuectl sign-payment order_abc pay_xyz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env := loadEnv(cmd)
			if env.RazorpayKeySecret == "" {
				return errors.New("RAZORPAY_KEY_SECRET is not set")
			}
			v := services.PaymentVerifier{Secret: env.RazorpayKeySecret}
			fmt.Fprintln(cmd.OutOrStdout(), v.Sign(args[0], args[1]))
			return nil
		},
	}
}

func testEmailCmd() *cobra.Command {
	var to string
	cmd := &cobra.Command{
		Use:   "test-email",
		Short: "Send a test message through the configured transport",
		RunE: func(cmd *cobra.Command, _ []string) error {
			env := loadEnv(cmd)
			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			m, err := mailer.New(ctx, env)
			if err != nil {
				return err
			}
			recipient := utils.FirstNonEmpty(to, env.OperatorEmail)
			if recipient == "" {
				return errors.New("no recipient: pass --to or set OPERATOR_EMAIL")
			}
			msg, err := mailer.TestMessage(recipient, env.EmailProvider, time.Now())
			if err != nil {
				return err
			}
			if err := m.Send(ctx, msg); err != nil {
				return fmt.Errorf("send test email: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "test email sent to %s via %s\n", recipient, env.EmailProvider)
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "recipient (defaults to OPERATOR_EMAIL)")
	return cmd
}
