package dynamo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Kush146/note-app-Backend/internal/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// PasscodeRepo manages one-time login codes, keyed by email.
// PutItem replaces any existing item, which gives a new issuance
// overwrite-the-previous-code semantics for free.
type PasscodeRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewPasscodeRepo(client *dynamodb.Client, tableName string) *PasscodeRepo {
	return &PasscodeRepo{client: client, tableName: tableName}
}

func (r *PasscodeRepo) Put(ctx context.Context, p *domain.Passcode) error {
	item, err := attributevalue.MarshalMap(p)
	if err != nil {
		return fmt.Errorf("marshal passcode: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

func (r *PasscodeRepo) Get(ctx context.Context, email string) (*domain.Passcode, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey("email", email),
	})
	if err != nil {
		return nil, err
	}
	if out.Item == nil {
		return nil, fmt.Errorf("passcode not found: %w", domain.ErrNotFound)
	}
	var p domain.Passcode
	if err := attributevalue.UnmarshalMap(out.Item, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Consume deletes the passcode only if the stored code matches and has not
// expired. The conditional delete is the single-use guarantee: of two
// concurrent verifications at most one condition can succeed.
// A failed condition (mismatch, expiry, or a racing delete) is reported as
// domain.ErrUnauthorized.
func (r *PasscodeRepo) Consume(ctx context.Context, email, code string, now int64) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("email", email),
		ConditionExpression: aws.String("#c = :code AND #exp > :now"),
		ExpressionAttributeNames: map[string]string{
			"#c":   "code",
			"#exp": "expires_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
			":now":  &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", now)},
		},
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return fmt.Errorf("passcode invalid or expired: %w", domain.ErrUnauthorized)
		}
		return err
	}
	return nil
}
