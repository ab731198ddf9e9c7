// Package cloudformation models the subset of the CloudFormation template
// format this tool emits.
package cloudformation

// FormatVersion is the only template format version CloudFormation defines.
const FormatVersion = "2010-09-09"

// Template is the output document: fixed header fields plus the merged
// resource collection. Immutable once assembled.
type Template struct {
	AWSTemplateFormatVersion string              `json:"AWSTemplateFormatVersion" yaml:"AWSTemplateFormatVersion"`
	Description              string              `json:"Description" yaml:"Description"`
	Resources                map[string]Resource `json:"Resources" yaml:"Resources"`
}

// New returns an empty template with the header filled in.
func New(description string) *Template {
	return &Template{
		AWSTemplateFormatVersion: FormatVersion,
		Description:              description,
		Resources:                make(map[string]Resource),
	}
}

// Resource is a single entry in the Resources collection.
type Resource struct {
	Type       string `json:"Type" yaml:"Type"`
	Properties any    `json:"Properties" yaml:"Properties"`
}

// Tag is a CloudFormation resource tag.
type Tag struct {
	Key   string `json:"Key" yaml:"Key"`
	Value string `json:"Value" yaml:"Value"`
}

// NameTag returns a single-element tag list carrying the Name tag.
func NameTag(value string) []Tag {
	return []Tag{{Key: "Name", Value: value}}
}

// VPCProperties are the properties of an AWS::EC2::VPC resource.
type VPCProperties struct {
	CIDRBlock          string `json:"CidrBlock" yaml:"CidrBlock"`
	EnableDNSHostnames bool   `json:"EnableDnsHostnames" yaml:"EnableDnsHostnames"`
	EnableDNSSupport   bool   `json:"EnableDnsSupport" yaml:"EnableDnsSupport"`
	Tags               []Tag  `json:"Tags" yaml:"Tags"`
}

// IngressRule is one flattened security group ingress entry. The template
// format carries exactly one CIDR per entry.
type IngressRule struct {
	IPProtocol string `json:"IpProtocol" yaml:"IpProtocol"`
	FromPort   int32  `json:"FromPort" yaml:"FromPort"`
	ToPort     int32  `json:"ToPort" yaml:"ToPort"`
	CIDRIP     string `json:"CidrIp" yaml:"CidrIp"`
}

// SecurityGroupProperties are the properties of an AWS::EC2::SecurityGroup
// resource.
type SecurityGroupProperties struct {
	GroupDescription     string        `json:"GroupDescription" yaml:"GroupDescription"`
	SecurityGroupIngress []IngressRule `json:"SecurityGroupIngress" yaml:"SecurityGroupIngress"`
	Tags                 []Tag         `json:"Tags" yaml:"Tags"`
}

// InstanceProperties are the properties of an AWS::EC2::Instance resource.
type InstanceProperties struct {
	ImageID          string   `json:"ImageId" yaml:"ImageId"`
	InstanceType     string   `json:"InstanceType" yaml:"InstanceType"`
	KeyName          string   `json:"KeyName" yaml:"KeyName"`
	SecurityGroupIDs []string `json:"SecurityGroupIds" yaml:"SecurityGroupIds"`
	SubnetID         string   `json:"SubnetId" yaml:"SubnetId"`
	Tags             []Tag    `json:"Tags" yaml:"Tags"`
}
