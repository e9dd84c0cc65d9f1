package service

import (
	operationdomain "github.com/warebilllabs/warebill/internal/operation/domain"
	templatedomain "github.com/warebilllabs/warebill/internal/template/domain"
)

// chargePolicy maps each charge category to the operation types it bills.
// The table is fixed; categories missing from it match nothing.
var chargePolicy = map[templatedomain.ChargeCategory]map[operationdomain.OperationType]bool{
	templatedomain.CategoryInboundOutbound: {
		operationdomain.OperationInbound:  true,
		operationdomain.OperationOutbound: true,
	},
	templatedomain.CategoryStorage: {
		operationdomain.OperationInbound: true,
	},
	templatedomain.CategoryReturn: {
		operationdomain.OperationOutbound: true,
	},
	templatedomain.CategoryTransport: {
		operationdomain.OperationInbound:  true,
		operationdomain.OperationOutbound: true,
	},
	templatedomain.CategoryMaterial: {
		operationdomain.OperationInbound:  true,
		operationdomain.OperationOutbound: true,
	},
	templatedomain.CategoryManual: {
		operationdomain.OperationInbound:  true,
		operationdomain.OperationOutbound: true,
	},
}

// MatchesOperation reports whether a charge category bills the given
// operation type. Unknown categories fail closed.
func MatchesOperation(category templatedomain.ChargeCategory, opType operationdomain.OperationType) bool {
	return chargePolicy[category][opType]
}
