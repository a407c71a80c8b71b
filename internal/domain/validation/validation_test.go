package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViolations_Err(t *testing.T) {
	tests := []struct {
		name    string
		fill    func(v Violations)
		wantErr bool
		wantMsg string
	}{
		{
			name:    "empty is nil",
			fill:    func(Violations) {},
			wantErr: false,
		},
		{
			name: "single violation",
			fill: func(v Violations) {
				v.Add("email", "must be a valid email address")
			},
			wantErr: true,
			wantMsg: "validation failed: email: must be a valid email address",
		},
		{
			name: "multiple violations are sorted by field",
			fill: func(v Violations) {
				v.Add("name", "must not be blank")
				v.Add("age", "must be between %d and %d", 0, 150)
			},
			wantErr: true,
			wantMsg: "validation failed: age: must be between 0 and 150; name: must not be blank",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Violations{}
			tt.fill(v)

			err := v.Err()
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())

			var verr *Error
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, v, verr.Violations)
		})
	}
}
