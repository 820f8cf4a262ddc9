package repository

import (
	"context"

	"heavyhaul_shop/internal/domain/entities"
	"heavyhaul_shop/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Vehicles and customers are owned by the external record store; this side
// only ever reads them to resolve the joins on a work order.

const (
	defaultVehiclesTableName  = "vehicles"
	defaultCustomersTableName = "customers"
)

type vehicleItem struct {
	ID          string `dynamodbav:"id"`
	CustomerID  string `dynamodbav:"customer_id,omitempty"`
	Year        int    `dynamodbav:"year,omitempty"`
	Make        string `dynamodbav:"make,omitempty"`
	Model       string `dynamodbav:"model,omitempty"`
	VIN         string `dynamodbav:"vin,omitempty"`
	UnitNumber  string `dynamodbav:"unit_number,omitempty"`
	VehicleType string `dynamodbav:"vehicle_type,omitempty"`
}

type VehicleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IVehicleRepository = (*VehicleDynamoRepository)(nil)

func NewVehicleDynamoRepository(ddb *dynamodb.Client) *VehicleDynamoRepository {
	return &VehicleDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("VEHICLES_TABLE", defaultVehiclesTableName),
	}
}

func (r *VehicleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Vehicle, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Vehicle{}, err
	}
	if len(out.Item) == 0 {
		return entities.Vehicle{}, nil
	}

	var it vehicleItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Vehicle{}, err
	}
	return entities.Vehicle{
		ID:          it.ID,
		CustomerID:  it.CustomerID,
		Year:        it.Year,
		Make:        it.Make,
		Model:       it.Model,
		VIN:         it.VIN,
		UnitNumber:  it.UnitNumber,
		VehicleType: it.VehicleType,
	}, nil
}

type customerItem struct {
	ID             string `dynamodbav:"id"`
	FirstName      string `dynamodbav:"first_name,omitempty"`
	LastName       string `dynamodbav:"last_name,omitempty"`
	Phone          string `dynamodbav:"phone,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`
	BillingAddress string `dynamodbav:"billing_address,omitempty"`
	CompanyName    string `dynamodbav:"company_name,omitempty"`
}

type CustomerDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb *dynamodb.Client) *CustomerDynamoRepository {
	return &CustomerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName),
	}
}

func (r *CustomerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Item) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Customer{}, err
	}
	return entities.Customer{
		ID:             it.ID,
		FirstName:      it.FirstName,
		LastName:       it.LastName,
		Phone:          it.Phone,
		Email:          it.Email,
		BillingAddress: it.BillingAddress,
		CompanyName:    it.CompanyName,
	}, nil
}
