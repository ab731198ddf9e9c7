// Package export models the JSON documents produced by AWS resource
// description exports (the shape of `aws ec2 describe-*` output) and loads
// them from disk.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// VPCDocument mirrors the output of `aws ec2 describe-vpcs`.
type VPCDocument struct {
	Vpcs []ec2types.Vpc `json:"Vpcs"`
}

// SecurityGroupDocument mirrors the output of `aws ec2 describe-security-groups`.
type SecurityGroupDocument struct {
	SecurityGroups []ec2types.SecurityGroup `json:"SecurityGroups"`
}

// InstanceDocument mirrors the output of `aws ec2 describe-instances`.
// Instances are nested inside reservations.
type InstanceDocument struct {
	Reservations []ec2types.Reservation `json:"Reservations"`
}

// Status reports how a document load ended.
type Status int

const (
	// StatusLoaded means the file existed and parsed cleanly.
	StatusLoaded Status = iota
	// StatusAbsent means the file does not exist; dst is left empty.
	StatusAbsent
	// StatusMalformed means the file exists but could not be read or parsed
	// as JSON; dst is left empty.
	StatusMalformed
)

// Load reads the JSON document at path into dst. A missing or unparsable
// file is not a failure of the run: the status tells the caller which case
// occurred, the error carries detail for the diagnostic, and dst stays
// empty so the category contributes zero resources.
func Load(path string, dst any) (Status, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StatusAbsent, nil
		}
		return StatusMalformed, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return StatusMalformed, fmt.Errorf("parsing %s: %w", path, err)
	}
	return StatusLoaded, nil
}
