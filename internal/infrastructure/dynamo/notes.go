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

// NoteRepo manages notes. PK: note_id; `email-index` GSI serves the
// per-owner listing. Mutations carry an owner-match condition so a note
// belonging to someone else is indistinguishable from a missing one.
type NoteRepo struct {
	client    *dynamodb.Client
	tableName string
}

func NewNoteRepo(client *dynamodb.Client, tableName string) *NoteRepo {
	return &NoteRepo{client: client, tableName: tableName}
}

func (r *NoteRepo) Put(ctx context.Context, n *domain.Note) error {
	item, err := attributevalue.MarshalMap(n)
	if err != nil {
		return fmt.Errorf("marshal note: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	return err
}

// ListByEmail queries the email-index GSI for all notes owned by email.
func (r *NoteRepo) ListByEmail(ctx context.Context, email string) ([]domain.Note, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String("email-index"),
		KeyConditionExpression:    aws.String("#e = :email"),
		ExpressionAttributeNames:  map[string]string{"#e": "email"},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":email": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		return nil, err
	}
	notes := make([]domain.Note, 0, len(out.Items))
	if err := attributevalue.UnmarshalListOfMaps(out.Items, &notes); err != nil {
		return nil, err
	}
	return notes, nil
}

// Update sets the given fields on a note, but only when the note exists and
// is owned by email. Returns the updated note, or domain.ErrNotFound when the
// owner condition fails.
func (r *NoteRepo) Update(ctx context.Context, noteID, email string, updates map[string]interface{}) (*domain.Note, error) {
	ue, err := buildUpdateExpr(updates)
	if err != nil {
		return nil, err
	}
	ue.Names["#owner"] = "email"
	ue.Values[":owner"] = &types.AttributeValueMemberS{Value: email}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey("note_id", noteID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("attribute_exists(note_id) AND #owner = :owner"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return nil, fmt.Errorf("note not found: %w", domain.ErrNotFound)
		}
		return nil, err
	}
	var n domain.Note
	if err := attributevalue.UnmarshalMap(out.Attributes, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

// Delete removes a note, but only when it exists and is owned by email.
func (r *NoteRepo) Delete(ctx context.Context, noteID, email string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 strKey("note_id", noteID),
		ConditionExpression: aws.String("attribute_exists(note_id) AND #owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "email",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":owner": &types.AttributeValueMemberS{Value: email},
		},
	})
	if err != nil {
		var ccfe *types.ConditionalCheckFailedException
		if errors.As(err, &ccfe) {
			return fmt.Errorf("note not found: %w", domain.ErrNotFound)
		}
		return err
	}
	return nil
}
