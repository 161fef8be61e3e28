package main

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type storedCookie struct {
	Name    string    `yaml:"name"`
	Value   string    `yaml:"value"`
	Path    string    `yaml:"path,omitempty"`
	Expires time.Time `yaml:"expires,omitempty"`
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "personnel", "session.yaml")
}

func (a *app) loadSession() error {
	if a.session == "" {
		return nil
	}
	data, err := os.ReadFile(a.session)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	var stored []storedCookie
	if err = yaml.Unmarshal(data, &stored); err != nil {
		return err
	}
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, item := range stored {
		if !item.Expires.IsZero() && item.Expires.Before(time.Now()) {
			continue
		}
		cookies = append(cookies, &http.Cookie{Name: item.Name, Value: item.Value, Path: item.Path, Expires: item.Expires})
	}
	a.client.SetCookies(cookies)
	return nil
}

func (a *app) saveSession() error {
	if a.session == "" {
		return nil
	}
	cookies := a.client.Cookies()
	stored := make([]storedCookie, 0, len(cookies))
	for _, cookie := range cookies {
		stored = append(stored, storedCookie{Name: cookie.Name, Value: cookie.Value, Path: "/"})
	}
	data, err := yaml.Marshal(stored)
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(a.session), 0o700); err != nil {
		return err
	}
	return os.WriteFile(a.session, data, 0o600)
}

func (a *app) clearSession() error {
	if a.session == "" {
		return nil
	}
	if err := os.Remove(a.session); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
