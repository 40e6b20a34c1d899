package ec2

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/capreserve/internal/reservation"
)

// RealClient talks to the live EC2 API.
type RealClient struct {
	ec2    *ec2.Client
	region string
}

// NewRealClient creates a client for the given region using the default AWS
// credential provider chain (environment, shared config, instance metadata).
func NewRealClient(ctx context.Context, region string) (*RealClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &RealClient{ec2: ec2.NewFromConfig(cfg), region: region}, nil
}

// NewRealClientWithStaticCredentials creates a client with explicit
// credentials instead of the default provider chain.
func NewRealClientWithStaticCredentials(ctx context.Context, region, accessKeyID, secretAccessKey string) (*RealClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, "")),
		awsconfig.WithRegion(region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &RealClient{ec2: ec2.NewFromConfig(cfg), region: region}, nil
}

// Region returns the region the client was built for.
func (c *RealClient) Region() string {
	return c.region
}

// CreateCapacityReservation issues one CreateCapacityReservation call and
// maps the response to a reservation record. Classification of errors is the
// caller's concern; the raw API error is returned unwrapped so the error code
// stays inspectable.
func (c *RealClient) CreateCapacityReservation(ctx context.Context, req reservation.Request) (*reservation.Record, error) {
	out, err := c.ec2.CreateCapacityReservation(ctx, createInput(req))
	if err != nil {
		return nil, err
	}
	if out.CapacityReservation == nil {
		return nil, fmt.Errorf("provider returned an empty reservation payload")
	}
	return recordFromReservation(out.CapacityReservation), nil
}

// CancelCapacityReservation cancels a reservation by its identifier.
func (c *RealClient) CancelCapacityReservation(ctx context.Context, reservationID string) error {
	_, err := c.ec2.CancelCapacityReservation(ctx, &ec2.CancelCapacityReservationInput{
		CapacityReservationId: aws.String(reservationID),
	})
	if err != nil {
		return fmt.Errorf("failed to cancel reservation %s: %w", reservationID, err)
	}
	return nil
}

// createInput builds the API request. The shape mirrors the provider call
// bit-for-bit: instance type, platform, zone, tenancy, count, EBS flag,
// end-date type, end date for limited reservations, and the tag list keyed by
// the capacity-reservation resource type.
func createInput(req reservation.Request) *ec2.CreateCapacityReservationInput {
	input := &ec2.CreateCapacityReservationInput{
		InstanceType:     aws.String(req.InstanceType),
		InstancePlatform: types.CapacityReservationInstancePlatform(req.Platform),
		AvailabilityZone: aws.String(req.AvailabilityZone),
		Tenancy:          types.CapacityReservationTenancy(req.Tenancy),
		InstanceCount:    aws.Int32(req.InstanceCount),
		EbsOptimized:     aws.Bool(req.EbsOptimized),
		EndDateType:      types.EndDateType(req.EndDateType),
	}
	if req.EndDateType == reservation.EndDateLimited && req.EndDate != nil {
		input.EndDate = aws.Time(*req.EndDate)
	}
	if len(req.Tags) > 0 {
		input.TagSpecifications = []types.TagSpecification{{
			ResourceType: types.ResourceTypeCapacityReservation,
			Tags:         tagsFromMap(req.Tags),
		}}
	}
	return input
}

// tagsFromMap converts the tag set to API tags in deterministic key order.
func tagsFromMap(tags map[string]string) []types.Tag {
	keys := make([]string, 0, len(tags))
	for k := range tags {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]types.Tag, 0, len(keys))
	for _, k := range keys {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}

// recordFromReservation maps the API payload to the caller-owned record.
func recordFromReservation(cr *types.CapacityReservation) *reservation.Record {
	rec := &reservation.Record{
		ID:                     aws.ToString(cr.CapacityReservationId),
		OwnerID:                aws.ToString(cr.OwnerId),
		ARN:                    aws.ToString(cr.CapacityReservationArn),
		InstanceType:           aws.ToString(cr.InstanceType),
		Platform:               string(cr.InstancePlatform),
		AvailabilityZone:       aws.ToString(cr.AvailabilityZone),
		Tenancy:                string(cr.Tenancy),
		TotalInstanceCount:     aws.ToInt32(cr.TotalInstanceCount),
		AvailableInstanceCount: aws.ToInt32(cr.AvailableInstanceCount),
		EbsOptimized:           aws.ToBool(cr.EbsOptimized),
		State:                  string(cr.State),
		StartDate:              aws.ToTime(cr.StartDate),
		CreateDate:             aws.ToTime(cr.CreateDate),
		EndDateType:            string(cr.EndDateType),
	}
	if cr.EndDate != nil {
		end := *cr.EndDate
		rec.EndDate = &end
	}
	if len(cr.Tags) > 0 {
		rec.Tags = make(map[string]string, len(cr.Tags))
		for _, tag := range cr.Tags {
			rec.Tags[aws.ToString(tag.Key)] = aws.ToString(tag.Value)
		}
	}
	return rec
}
