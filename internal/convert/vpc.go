package convert

import (
	"fmt"

	"github.com/matijazezelj/cfimport/internal/export"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
)

const defaultVPCCIDR = "10.0.0.0/16"

// VPCs converts every VPC in the document into an AWS::EC2::VPC resource.
// DNS hostnames and DNS support are always enabled on the declared VPC,
// whatever the source VPC had.
func VPCs(doc *export.VPCDocument) map[string]cloudformation.Resource {
	resources := make(map[string]cloudformation.Resource)

	for i, vpc := range doc.Vpcs {
		// Records without a native ID fall back to their index.
		name := fmt.Sprintf("VPC%d", i)
		nativeID := name
		if vpc.VpcId != nil {
			nativeID = *vpc.VpcId
			name = logicalID("VPC", nativeID)
		}

		resources[name] = cloudformation.Resource{
			Type: "AWS::EC2::VPC",
			Properties: cloudformation.VPCProperties{
				CIDRBlock:          stringOr(vpc.CidrBlock, defaultVPCCIDR),
				EnableDNSHostnames: true,
				EnableDNSSupport:   true,
				Tags:               cloudformation.NameTag("Imported-" + nativeID),
			},
		}
	}

	return resources
}
