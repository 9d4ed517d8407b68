package main

import "testing"

func TestCreateCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		volatile    bool
		wantContain []string
	}{
		{
			name:        "create new key",
			args:        []string{"HKEY_LOCAL_MACHINE", `Software\MyApp`},
			wantContain: []string{"created=true"},
		},
		{
			name:        "create volatile key",
			args:        []string{"HKEY_CURRENT_USER", "Temp"},
			volatile:    true,
			wantContain: []string{"created=true"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			createVolatile = tt.volatile
			createClass = ""

			output, err := captureOutput(t, func() error {
				return runCreate(tt.args)
			})
			if err != nil {
				t.Fatalf("runCreate() error = %v\noutput: %s", err, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}

func TestCreateCommand_UnknownRoot(t *testing.T) {
	resetFlags()
	_, err := captureOutput(t, func() error {
		return runCreate([]string{"NOT_A_ROOT", "Sub"})
	})
	if err == nil {
		t.Fatalf("expected an error for an unknown root name")
	}
}
