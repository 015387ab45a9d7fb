package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// PromptDeviceIndex asks for the integer camera index until a valid one is entered
func PromptDeviceIndex(in io.Reader, out io.Writer) (int, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Enter camera ID (int): ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("failed to read camera ID: %w", err)
			}
			return 0, io.ErrUnexpectedEOF
		}

		id, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil || id < 0 {
			fmt.Fprintln(out, "Camera ID must be a non-negative integer")
			continue
		}
		return id, nil
	}
}

// ParseDeviceIndex converts a device string like "0" into a camera index
func ParseDeviceIndex(device string) (int, error) {
	if device == "" {
		return 0, nil
	}
	id, err := strconv.Atoi(strings.TrimSpace(device))
	if err != nil {
		return 0, fmt.Errorf("invalid camera device index %q: %w", device, err)
	}
	if id < 0 {
		return 0, fmt.Errorf("camera device index must not be negative: %d", id)
	}
	return id, nil
}
