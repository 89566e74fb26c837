package validation

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
)

type datePayload struct {
	Date string `binding:"omitempty,datetime=2006-01-02,pastdate"`
}

func TestPastDate(t *testing.T) {
	Init()

	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "past date passes", date: "1990-03-15", wantErr: false},
		{name: "today passes", date: time.Now().Format("2006-01-02"), wantErr: false},
		{name: "tomorrow fails", date: time.Now().AddDate(0, 0, 1).Format("2006-01-02"), wantErr: true},
		{name: "malformed date fails", date: "15/03/1990", wantErr: true},
		{name: "empty date is skipped", date: "", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(datePayload{Date: tt.date})
			if tt.wantErr && err == nil {
				t.Errorf("expected validation error for %q, got nil", tt.date)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error for %q: %v", tt.date, err)
			}
		})
	}
}
