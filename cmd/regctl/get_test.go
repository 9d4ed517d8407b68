package main

import "testing"

const testSnapshot = `WINE REGISTRY Version 2

[HKEY_LOCAL_MACHINE\Software\MyApp] 1
"Name"="hello"
"Count"=dword:0000002a

`

func TestGetCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := writeBootstrap(t, dir, "HKEY_LOCAL_MACHINE", testSnapshot)

	tests := []struct {
		name        string
		args        []string
		wantErr     bool
		wantContain []string
		wantJSON    bool
	}{
		{
			name:        "get string value",
			args:        []string{"HKEY_LOCAL_MACHINE", `Software\MyApp`, "Name"},
			wantContain: []string{"hello"},
		},
		{
			name:        "get dword value",
			args:        []string{"HKEY_LOCAL_MACHINE", `Software\MyApp`, "Count"},
			wantContain: []string{"42"},
		},
		{
			name:    "nonexistent value",
			args:    []string{"HKEY_LOCAL_MACHINE", `Software\MyApp`, "Missing"},
			wantErr: true,
		},
		{
			name:        "get as json",
			args:        []string{"HKEY_LOCAL_MACHINE", `Software\MyApp`, "Name"},
			wantJSON:    true,
			wantContain: []string{"hello"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags()
			configPath = cfg
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runGet(tt.args)
			})

			if (err != nil) != tt.wantErr {
				t.Fatalf("runGet() error = %v, wantErr %v\noutput: %s", err, tt.wantErr, output)
			}
			if tt.wantJSON && err == nil {
				assertJSON(t, output)
			}
			assertContains(t, output, tt.wantContain)
		})
	}
}
