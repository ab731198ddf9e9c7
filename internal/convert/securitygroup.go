package convert

import (
	"github.com/matijazezelj/cfimport/internal/export"
	"github.com/matijazezelj/cfimport/pkg/cloudformation"
)

const (
	defaultProtocol    = "tcp"
	defaultPort        = 80
	defaultCIDR        = "0.0.0.0/0"
	defaultDescription = "Imported security group"
)

// SecurityGroups converts every non-default security group in the document
// into an AWS::EC2::SecurityGroup resource. The group named "default" is
// the implicit group every VPC carries and cannot be declared as a managed
// resource, so it is skipped.
func SecurityGroups(doc *export.SecurityGroupDocument) map[string]cloudformation.Resource {
	resources := make(map[string]cloudformation.Resource)

	for _, sg := range doc.SecurityGroups {
		if stringOr(sg.GroupName, "") == "default" {
			continue
		}

		groupID := stringOr(sg.GroupId, "")
		name := logicalID("SecurityGroup", groupID)

		// The template format carries one CIDR per ingress entry, so each
		// source rule fans out into one entry per attached range. A rule
		// with no ranges contributes nothing.
		ingress := []cloudformation.IngressRule{}
		for _, perm := range sg.IpPermissions {
			protocol := stringOr(perm.IpProtocol, defaultProtocol)
			from := int32Or(perm.FromPort, defaultPort)
			to := int32Or(perm.ToPort, defaultPort)

			for _, r := range perm.IpRanges {
				ingress = append(ingress, cloudformation.IngressRule{
					IPProtocol: protocol,
					FromPort:   from,
					ToPort:     to,
					CIDRIP:     stringOr(r.CidrIp, defaultCIDR),
				})
			}
		}

		resources[name] = cloudformation.Resource{
			Type: "AWS::EC2::SecurityGroup",
			Properties: cloudformation.SecurityGroupProperties{
				GroupDescription:     stringOr(sg.Description, defaultDescription),
				SecurityGroupIngress: ingress,
				Tags:                 cloudformation.NameTag("Imported-" + stringOr(sg.GroupName, groupID)),
			},
		}
	}

	return resources
}
