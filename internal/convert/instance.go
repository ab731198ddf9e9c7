package convert

import (
	"github.com/matijazezelj/cfimport/internal/export"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
)

const (
	defaultImageID      = "ami-0abcdef1234567890"
	defaultInstanceType = "t2.micro"
)

// Instances converts every instance in the document into an
// AWS::EC2::Instance resource, flattening away the reservation grouping.
func Instances(doc *export.InstanceDocument) map[string]cloudformation.Resource {
	resources := make(map[string]cloudformation.Resource)

	for _, reservation := range doc.Reservations {
		for _, inst := range reservation.Instances {
			instanceID := stringOr(inst.InstanceId, "")
			name := logicalID("EC2Instance", instanceID)

			groupIDs := []string{}
			for _, g := range inst.SecurityGroups {
				if g.GroupId != nil {
					groupIDs = append(groupIDs, *g.GroupId)
				}
			}

			instanceType := string(inst.InstanceType)
			if instanceType == "" {
				instanceType = defaultInstanceType
			}

			resources[name] = cloudformation.Resource{
				Type: "AWS::EC2::Instance",
				Properties: cloudformation.InstanceProperties{
					ImageID:          stringOr(inst.ImageId, defaultImageID),
					InstanceType:     instanceType,
					KeyName:          stringOr(inst.KeyName, ""),
					SecurityGroupIDs: groupIDs,
					SubnetID:         stringOr(inst.SubnetId, ""),
					Tags:             cloudformation.NameTag("Imported-" + instanceID),
				},
			}
		}
	}

	return resources
}
