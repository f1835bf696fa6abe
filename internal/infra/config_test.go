package infra

import "testing"

func TestLoadConfigReconcileDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DUE_DAY_OF_MONTH", "")
	t.Setenv("REMINDER_OFFSETS", "")
	t.Setenv("OVERDUE_OFFSETS", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DueDayOfMonth != 15 {
		t.Fatalf("DueDayOfMonth = %d, want 15", cfg.DueDayOfMonth)
	}
	if got, want := cfg.ReminderDays, []int{3, 7}; !equalInts(got, want) {
		t.Fatalf("ReminderDays = %v, want %v", got, want)
	}
	if got, want := cfg.OverdueDays, []int{1, 7, 15, 30}; !equalInts(got, want) {
		t.Fatalf("OverdueDays = %v, want %v", got, want)
	}
}

func TestLoadConfigHonorsPolicyOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DUE_DAY_OF_MONTH", "10")
	t.Setenv("REMINDER_OFFSETS", "5")
	t.Setenv("OVERDUE_OFFSETS", "2, 14")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.DueDayOfMonth != 10 {
		t.Fatalf("DueDayOfMonth = %d, want 10", cfg.DueDayOfMonth)
	}
	if got, want := cfg.ReminderDays, []int{5}; !equalInts(got, want) {
		t.Fatalf("ReminderDays = %v, want %v", got, want)
	}
	if got, want := cfg.OverdueDays, []int{2, 14}; !equalInts(got, want) {
		t.Fatalf("OverdueDays = %v, want %v", got, want)
	}
}

func TestLoadConfigRejectsBadPolicy(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("JWT_SECRET", "test-secret")

	t.Setenv("DUE_DAY_OF_MONTH", "31")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for DUE_DAY_OF_MONTH=31")
	}

	t.Setenv("DUE_DAY_OF_MONTH", "15")
	t.Setenv("OVERDUE_OFFSETS", "1,zero")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for malformed OVERDUE_OFFSETS")
	}
}

func TestLoadConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "test-secret")
	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error when DATABASE_URL is missing")
	}
}

func equalInts(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
