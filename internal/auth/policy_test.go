package auth

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/foodyy-service/internal/domain"
)

func TestDefaultRulesEvaluation(t *testing.T) {
	policy := NewPolicy(DefaultRules())

	tests := []struct {
		name   string
		method string
		path   string
		want   Decision
	}{
		{"preflight is always open", fiber.MethodOptions, "/admin/orders", Decision{Public: true}},
		{"admin signin open", fiber.MethodPost, "/admin/signin", Decision{Public: true}},
		{"customer signin open", fiber.MethodPost, "/customer/signin", Decision{Public: true}},
		{"customer signup open", fiber.MethodPost, "/customer/signup", Decision{Public: true}},
		{"forgot password open", fiber.MethodPost, "/forgot-password/verify-email/a@b.com", Decision{Public: true}},
		{"health open", fiber.MethodGet, "/health/ready", Decision{Public: true}},
		{"food image open", fiber.MethodGet, "/customer/food/12/image", Decision{Public: true}},
		{"admin food image open", fiber.MethodGet, "/admin/food/12/image", Decision{Public: true}},
		{"admin signout open", fiber.MethodPost, "/admin/signout", Decision{Public: true}},
		{"customer signout open", fiber.MethodPost, "/customer/signout", Decision{Public: true}},
		{"admin routes need admin", fiber.MethodGet, "/admin/orders", Decision{Role: domain.RoleAdmin}},
		{"customer routes need customer", fiber.MethodGet, "/customer/4/orders", Decision{Role: domain.RoleCustomer}},
		{"cart falls to authenticated default", fiber.MethodGet, "/cart/4", Decision{}},
		{"order placement falls to authenticated default", fiber.MethodPost, "/4/order/place", Decision{}},
		{"unknown route is not public", fiber.MethodGet, "/no/such/route", Decision{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Evaluate(tt.method, tt.path))
		})
	}
}

func TestPolicyFirstMatchWins(t *testing.T) {
	policy := NewPolicy([]Rule{
		{Exact: "/admin/special", Public: true},
		{Prefix: "/admin", Role: domain.RoleAdmin},
	})

	assert.True(t, policy.Public(fiber.MethodGet, "/admin/special"))
	assert.Equal(t, domain.RoleAdmin, policy.Evaluate(fiber.MethodGet, "/admin/other").Role)
}

func TestRuleMatching(t *testing.T) {
	tests := []struct {
		name   string
		rule   Rule
		method string
		path   string
		want   bool
	}{
		{"method mismatch", Rule{Method: fiber.MethodPost, Prefix: "/x"}, fiber.MethodGet, "/x/y", false},
		{"method wildcard", Rule{Prefix: "/x"}, fiber.MethodDelete, "/x/y", true},
		{"exact mismatch", Rule{Exact: "/x"}, fiber.MethodGet, "/x/y", false},
		{"prefix and suffix", Rule{Prefix: "/food/", Suffix: "/image"}, fiber.MethodGet, "/food/9/image", true},
		{"suffix mismatch", Rule{Prefix: "/food/", Suffix: "/image"}, fiber.MethodGet, "/food/9", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rule.matches(tt.method, tt.path))
		})
	}
}
