package setup

import (
	"testing"

	"github.com/bornholm/pettymatters/internal/config"
	"github.com/pkg/errors"
)

func TestGetIdentityProvidersFromConfig(t *testing.T) {
	conf := &config.Config{}
	conf.HTTP.BaseURL = "https://forum.example.org/"
	conf.HTTP.Authn.Providers.Github.Key = "github-key"
	conf.HTTP.Authn.Providers.Github.Secret = "github-secret"
	conf.HTTP.Authn.Providers.Gitea.Key = "gitea-key"
	conf.HTTP.Authn.Providers.Gitea.Secret = "gitea-secret"
	conf.HTTP.Authn.Providers.Gitea.Label = "Our Gitea"

	gothProviders, providers, err := getIdentityProvidersFromConfig(conf)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 2, len(gothProviders); e != g {
		t.Fatalf("len(gothProviders): expected '%v', got '%v'", e, g)
	}

	type expectedProvider struct {
		ID    string
		Label string
		Class string
	}

	expected := []expectedProvider{
		{ID: "github", Label: "GitHub", Class: "provider-github"},
		{ID: "gitea", Label: "Our Gitea", Class: "provider-gitea"},
	}

	if e, g := len(expected), len(providers); e != g {
		t.Fatalf("len(providers): expected '%v', got '%v'", e, g)
	}

	for i, e := range expected {
		g := providers[i]

		if e.ID != g.ID {
			t.Errorf("providers[%d].ID: expected '%v', got '%v'", i, e.ID, g.ID)
		}

		if e.Label != g.Label {
			t.Errorf("providers[%d].Label: expected '%v', got '%v'", i, e.Label, g.Label)
		}

		if e.Class != g.Class {
			t.Errorf("providers[%d].Class: expected '%v', got '%v'", i, e.Class, g.Class)
		}
	}

	if e, g := "https://forum.example.org/auth/oidc/providers/gitea/callback", callbackURL(conf, "gitea"); e != g {
		t.Errorf("callbackURL(): expected '%v', got '%v'", e, g)
	}
}

func TestAuthSessionName(t *testing.T) {
	conf := &config.Config{}
	conf.HTTP.Session.Name = "pettymatters"

	if e, g := "pettymatters_auth", authSessionName(conf); e != g {
		t.Errorf("authSessionName(): expected '%v', got '%v'", e, g)
	}
}
