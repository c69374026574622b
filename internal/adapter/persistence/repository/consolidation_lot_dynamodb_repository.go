package repository

import (
	"context"
	"time"

	"cobranzas_art/internal/domain/entities"
	"cobranzas_art/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

const (
	defaultLotsTableName  = "consolidation_lots"
	defaultItemsTableName = "consolidation_items"
	lotsInputHashIndex    = "input_hash-index"
	lotsPeriodIndex       = "period-index"

	// DynamoDB BatchWriteItem hard limit.
	batchWriteMax = 25
)

type consolidationLotItem struct {
	ID               string            `dynamodbav:"id"`
	CreatedAt        string            `dynamodbav:"created_at"`
	Period           string            `dynamodbav:"period"`
	MasterFile       string            `dynamodbav:"master_file"`
	SourceFiles      map[string]string `dynamodbav:"source_files,omitempty"`
	OutputPath       string            `dynamodbav:"output_path"`
	RowsConsolidated int               `dynamodbav:"rows_consolidated"`
	RowsUnmatched    int               `dynamodbav:"rows_unmatched"`
	InputHash        string            `dynamodbav:"input_hash"`
	Notes            string            `dynamodbav:"notes,omitempty"`
}

type consolidatedRowItem struct {
	LotID           string `dynamodbav:"lot_id"`
	ItemKey         string `dynamodbav:"item_key"`
	CUIT            string `dynamodbav:"cuit"`
	Period          string `dynamodbav:"period"`
	LegalName       string `dynamodbav:"legal_name,omitempty"`
	Insurer         string `dynamodbav:"insurer,omitempty"`
	Contract        string `dynamodbav:"contract,omitempty"`
	TotalDebt       string `dynamodbav:"total_debt"`
	MonthlyCost     string `dynamodbav:"monthly_cost,omitempty"`
	DebtPeriods     string `dynamodbav:"debt_periods,omitempty"`
	ContractState   string `dynamodbav:"contract_state,omitempty"`
	Email           string `dynamodbav:"email,omitempty"`
	DoNotContact    bool   `dynamodbav:"do_not_contact"`
	Producer        string `dynamodbav:"producer,omitempty"`
	Premier         string `dynamodbav:"premier,omitempty"`
	ImportantClient bool   `dynamodbav:"important_client"`
	InDebt          bool   `dynamodbav:"in_debt"`
	Sheet           string `dynamodbav:"sheet"`
}

// ConsolidationLotDynamoRepository persists lots and their items in DynamoDB.
//
// Table requirements:
//
//	lots table:
//	  - PK: id (string)
//	  - GSI: input_hash-index (PK: input_hash)
//	  - GSI: period-index (PK: period)
//	items table:
//	  - PK: lot_id (string), SK: item_key (string)
//
// item_key is cuit#insurer#contract#period#sheet. The matcher emits at most
// one row per key and sheet, so batch writes never carry duplicates; the
// table itself does not reject a re-put of an existing key.

type ConsolidationLotDynamoRepository struct {
	ddb        *dynamodb.Client
	lotsTable  string
	itemsTable string
}

var _ interfaces.IConsolidationLotRepository = (*ConsolidationLotDynamoRepository)(nil)

func NewConsolidationLotDynamoRepository(ddb *dynamodb.Client) *ConsolidationLotDynamoRepository {
	return &ConsolidationLotDynamoRepository{
		ddb:        ddb,
		lotsTable:  getenvDefault("LOTS_TABLE", defaultLotsTableName),
		itemsTable: getenvDefault("ITEMS_TABLE", defaultItemsTableName),
	}
}

func (r *ConsolidationLotDynamoRepository) CreateLot(ctx context.Context, lot entities.ConsolidationLot) (entities.ConsolidationLot, error) {
	av, err := attributevalue.MarshalMap(toLotItem(lot))
	if err != nil {
		return entities.ConsolidationLot{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.lotsTable),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ConsolidationLot{}, err
	}
	return lot, nil
}

// DeleteLot removes a lot header. Used to roll back a lot whose item batch
// failed, so its input_hash stops shadowing a retry.
func (r *ConsolidationLotDynamoRepository) DeleteLot(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.lotsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *ConsolidationLotDynamoRepository) GetLotByID(ctx context.Context, id string) (entities.ConsolidationLot, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.lotsTable),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ConsolidationLot{}, err
	}
	if len(out.Item) == 0 {
		return entities.ConsolidationLot{}, nil
	}

	var it consolidationLotItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ConsolidationLot{}, err
	}
	return fromLotItem(it), nil
}

func (r *ConsolidationLotDynamoRepository) GetLotByInputHash(ctx context.Context, hash string) (entities.ConsolidationLot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.lotsTable),
		IndexName:              aws.String(lotsInputHashIndex),
		KeyConditionExpression: aws.String("input_hash = :h"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":h": &types.AttributeValueMemberS{Value: hash},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.ConsolidationLot{}, err
	}
	if len(out.Items) == 0 {
		return entities.ConsolidationLot{}, nil
	}

	var it consolidationLotItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.ConsolidationLot{}, err
	}
	return fromLotItem(it), nil
}

func (r *ConsolidationLotDynamoRepository) ListLots(ctx context.Context) ([]entities.ConsolidationLot, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.lotsTable),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalLots(out.Items)
}

func (r *ConsolidationLotDynamoRepository) ListLotsByPeriod(ctx context.Context, period string) ([]entities.ConsolidationLot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.lotsTable),
		IndexName:              aws.String(lotsPeriodIndex),
		KeyConditionExpression: aws.String("#p = :p"),
		ExpressionAttributeNames: map[string]string{
			"#p": "period",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":p": &types.AttributeValueMemberS{Value: period},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalLots(out.Items)
}

// BulkAddItems writes the lot items in BatchWriteItem chunks, retrying
// unprocessed keys once per chunk. Returns the number of items handed to
// DynamoDB.
func (r *ConsolidationLotDynamoRepository) BulkAddItems(ctx context.Context, items []entities.ConsolidatedItem) (int, error) {
	written := 0
	for start := 0; start < len(items); start += batchWriteMax {
		end := start + batchWriteMax
		if end > len(items) {
			end = len(items)
		}

		reqs := make([]types.WriteRequest, 0, end-start)
		for _, it := range items[start:end] {
			av, err := attributevalue.MarshalMap(toRowItem(it))
			if err != nil {
				return written, err
			}
			reqs = append(reqs, types.WriteRequest{PutRequest: &types.PutRequest{Item: av}})
		}

		pending := map[string][]types.WriteRequest{r.itemsTable: reqs}
		for attempt := 0; len(pending[r.itemsTable]) > 0 && attempt < 2; attempt++ {
			out, err := r.ddb.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: pending,
			})
			if err != nil {
				return written, err
			}
			pending = out.UnprocessedItems
		}
		if n := len(pending[r.itemsTable]); n > 0 {
			written += end - start - n
			return written, &UnprocessedItemsError{Count: n}
		}
		written += end - start
	}
	return written, nil
}

func (r *ConsolidationLotDynamoRepository) ListItems(ctx context.Context, lotID string) ([]entities.ConsolidatedItem, error) {
	return r.queryItems(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("lot_id = :lid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: lotID},
		},
	})
}

func (r *ConsolidationLotDynamoRepository) ListItemsBySheet(ctx context.Context, lotID string, sheet entities.SheetTag) ([]entities.ConsolidatedItem, error) {
	return r.queryItems(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.itemsTable),
		KeyConditionExpression: aws.String("lot_id = :lid"),
		FilterExpression:       aws.String("sheet = :sh"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lid": &types.AttributeValueMemberS{Value: lotID},
			":sh":  &types.AttributeValueMemberS{Value: string(sheet)},
		},
	})
}

func (r *ConsolidationLotDynamoRepository) queryItems(ctx context.Context, in *dynamodb.QueryInput) ([]entities.ConsolidatedItem, error) {
	items := []entities.ConsolidatedItem{}
	for {
		out, err := r.ddb.Query(ctx, in)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it consolidatedRowItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromRowItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		in.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

func unmarshalLots(raw []map[string]types.AttributeValue) ([]entities.ConsolidationLot, error) {
	lots := make([]entities.ConsolidationLot, 0, len(raw))
	for _, m := range raw {
		var it consolidationLotItem
		if err := attributevalue.UnmarshalMap(m, &it); err != nil {
			return nil, err
		}
		lots = append(lots, fromLotItem(it))
	}
	return lots, nil
}

func toLotItem(lot entities.ConsolidationLot) consolidationLotItem {
	return consolidationLotItem{
		ID:               lot.ID,
		CreatedAt:        lot.CreatedAt.UTC().Format(time.RFC3339Nano),
		Period:           lot.Period,
		MasterFile:       lot.MasterFile,
		SourceFiles:      lot.SourceFiles,
		OutputPath:       lot.OutputPath,
		RowsConsolidated: lot.RowsConsolidated,
		RowsUnmatched:    lot.RowsUnmatched,
		InputHash:        lot.InputHash,
		Notes:            lot.Notes,
	}
}

func fromLotItem(it consolidationLotItem) entities.ConsolidationLot {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.ConsolidationLot{
		ID:               it.ID,
		CreatedAt:        createdAt,
		Period:           it.Period,
		MasterFile:       it.MasterFile,
		SourceFiles:      it.SourceFiles,
		OutputPath:       it.OutputPath,
		RowsConsolidated: it.RowsConsolidated,
		RowsUnmatched:    it.RowsUnmatched,
		InputHash:        it.InputHash,
		Notes:            it.Notes,
	}
}

// Monetary fields travel as decimal strings; DynamoDB numbers are floats
// on the wire and ARS amounts must not drift.
func toRowItem(it entities.ConsolidatedItem) consolidatedRowItem {
	return consolidatedRowItem{
		LotID:           it.LotID,
		ItemKey:         it.ItemKey(),
		CUIT:            it.CUIT,
		Period:          it.Period,
		LegalName:       it.LegalName,
		Insurer:         it.Insurer,
		Contract:        it.Contract,
		TotalDebt:       it.TotalDebt.String(),
		MonthlyCost:     decimalString(it.MonthlyCost),
		DebtPeriods:     decimalString(it.DebtPeriods),
		ContractState:   it.ContractState,
		Email:           it.Email,
		DoNotContact:    it.DoNotContact,
		Producer:        it.Producer,
		Premier:         string(it.Premier),
		ImportantClient: it.ImportantClient,
		InDebt:          it.InDebt,
		Sheet:           string(it.Sheet),
	}
}

func fromRowItem(it consolidatedRowItem) entities.ConsolidatedItem {
	debt, _ := decimal.NewFromString(it.TotalDebt)
	return entities.ConsolidatedItem{
		LotID:           it.LotID,
		CUIT:            it.CUIT,
		Period:          it.Period,
		LegalName:       it.LegalName,
		Insurer:         it.Insurer,
		Contract:        it.Contract,
		TotalDebt:       debt,
		MonthlyCost:     decimalFromString(it.MonthlyCost),
		DebtPeriods:     decimalFromString(it.DebtPeriods),
		ContractState:   it.ContractState,
		Email:           it.Email,
		DoNotContact:    it.DoNotContact,
		Producer:        it.Producer,
		Premier:         entities.PremierLabel(it.Premier),
		ImportantClient: it.ImportantClient,
		InDebt:          it.InDebt,
		Sheet:           entities.SheetTag(it.Sheet),
	}
}

func decimalString(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}

func decimalFromString(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
