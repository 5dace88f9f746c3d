package nats

import (
	"context"
	"testing"

	"menu-api/domain/models"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		prefix string
		event  string
		want   string
	}{
		{"menu", SubjectRegistered, "menu.registered"},
		{"menu.", SubjectDeleted, "menu.deleted"},
		{"shop.menu", SubjectDeleted, "shop.menu.deleted"},
		{"", SubjectRegistered, "registered"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := Subject(tt.prefix, tt.event); got != tt.want {
				t.Errorf("Subject(%q, %q) = %q, want %q", tt.prefix, tt.event, got, tt.want)
			}
		})
	}
}

func TestNoopPublisher(t *testing.T) {
	p := NewNoopPublisher()
	ctx := context.Background()

	if err := p.MenuRegistered(ctx, &models.Menu{ID: 1, Name: "Latte"}); err != nil {
		t.Errorf("MenuRegistered: %v", err)
	}
	if err := p.MenuDeleted(ctx, 1); err != nil {
		t.Errorf("MenuDeleted: %v", err)
	}
}

func TestConnectFailsWithoutServer(t *testing.T) {
	if _, err := Connect(Config{URL: "nats://127.0.0.1:1", SubjectPrefix: "menu"}); err == nil {
		t.Fatal("expected connection error")
	}
}
