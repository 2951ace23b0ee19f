package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"rescuerehab/internal/services"
)

func run(t *testing.T, cmd *cobra.Command, args ...string) string {
	t.Helper()
	root := &cobra.Command{Use: "rescuectl", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().StringSlice("env-file", []string{"testdata/missing.env"}, "")
	root.AddCommand(cmd)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("execute %v: %v", args, err)
	}
	return strings.TrimSpace(out.String())
}

func TestHashPasswordProducesBcrypt(t *testing.T) {
	out := run(t, hashPasswordCmd(), "hash-password", "s3cret", "--cost", "4")
	if err := bcrypt.CompareHashAndPassword([]byte(out), []byte("s3cret")); err != nil {
		t.Fatalf("hash does not match: %v", err)
	}
}

func TestSignPaymentMatchesVerifier(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("RAZORPAY_KEY_SECRET", "shh")

	out := run(t, signPaymentCmd(), "sign-payment", "order_1", "pay_1")
	if err := (services.PaymentVerifier{Secret: "shh"}).Verify("order_1", "pay_1", out); err != nil {
		t.Fatalf("signature rejected: %v", err)
	}
}
