// SPDX-License-Identifier: MPL-2.0

package platform

import (
	"errors"
	"testing"
)

func TestHost_NDKTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host    Host
		want    string
		wantErr bool
	}{
		{Host{Darwin, Amd64}, "darwin-x86_64", false},
		{Host{Darwin, Arm64}, "darwin-x86_64", false},
		{Host{Linux, Amd64}, "linux-x86_64", false},
		{Host{Windows, Amd64}, "windows-x86_64", false},
		{Host{Linux, Arm64}, "", true},
		{Host{"freebsd", Amd64}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.host.String(), func(t *testing.T) {
			t.Parallel()

			got, err := tt.host.NDKTag()
			if tt.wantErr {
				if !errors.Is(err, ErrHostNotSupported) {
					t.Fatalf("NDKTag() error = %v, want ErrHostNotSupported", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NDKTag() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("NDKTag() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHost_ExecutableSuffix(t *testing.T) {
	t.Parallel()

	if got := (Host{Windows, Amd64}).ExecutableSuffix(); got != ".cmd" {
		t.Errorf("windows suffix = %q, want .cmd", got)
	}
	if got := (Host{Linux, Amd64}).ExecutableSuffix(); got != "" {
		t.Errorf("linux suffix = %q, want empty", got)
	}
}

func TestHostNotSupportedError(t *testing.T) {
	t.Parallel()

	err := error(&HostNotSupportedError{Host: Host{Linux, "riscv64"}})
	if got, want := err.Error(), "no prebuilt NDK toolchain for host linux-riscv64"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
