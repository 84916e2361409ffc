package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cucumber/godog"
)

func registerGameSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^I am logged in$`, iAmLoggedIn)
	ctx.Step(`^I log in with email "([^"]*)" and password "([^"]*)"$`, iLogInWith)
	ctx.Step(`^I refresh my session$`, iRefreshMySession)
	ctx.Step(`^I forget my access token$`, iForgetMyAccessToken)
	ctx.Step(`^I have set up my profile as "([^"]*)"$`, iHaveSetUpMyProfileAs)
	ctx.Step(`^I am a player named "([^"]*)"$`, iAmAPlayerNamed)
	ctx.Step(`^I register an? "(expense|income)" of "([^"]*)" in "([^"]*)"$`, iRegisterA)
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func (tc *TestContext) storeTokens() error {
	if tc.response == nil || tc.response.StatusCode != http.StatusOK {
		return nil
	}
	var tokens tokenResponse
	if err := json.Unmarshal(tc.responseBody, &tokens); err != nil {
		return fmt.Errorf("failed to parse token response: %w", err)
	}
	tc.accessToken = tokens.AccessToken
	tc.refreshToken = tokens.RefreshToken
	return nil
}

func iLogInWith(ctx context.Context, email, password string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.sendJSON(ctx, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    email,
		"password": password,
	}); err != nil {
		return err
	}
	return tc.storeTokens()
}

func iAmLoggedIn(ctx context.Context) error {
	if err := iLogInWith(ctx, testEmail, testPassword); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusOK)
}

func iRefreshMySession(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.sendJSON(ctx, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": tc.refreshToken,
	}); err != nil {
		return err
	}
	return tc.storeTokens()
}

func iForgetMyAccessToken(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.accessToken = ""
	return nil
}

func iHaveSetUpMyProfileAs(ctx context.Context, handle string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.sendJSON(ctx, http.MethodPost, "/api/v1/profile/setup", map[string]string{
		"handle":    handle,
		"avatar_id": "avatar1",
	}); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusOK)
}

// iAmAPlayerNamed logs in and completes the profile in one step.
func iAmAPlayerNamed(ctx context.Context, handle string) error {
	if err := iAmLoggedIn(ctx); err != nil {
		return err
	}
	return iHaveSetUpMyProfileAs(ctx, handle)
}

func iRegisterA(ctx context.Context, kind, amount, category string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if err := tc.sendJSON(ctx, http.MethodPost, "/api/v1/transactions", map[string]string{
		"type":        kind,
		"amount":      amount,
		"description": kind + " " + amount,
		"category":    category,
	}); err != nil {
		return err
	}
	return theResponseStatusShouldBe(ctx, http.StatusCreated)
}
