package synth

import "time"

// EntityType classifies an address profile
type EntityType string

const (
	EntityExchange EntityType = "exchange"
	EntityWallet   EntityType = "wallet"
	EntityContract EntityType = "contract"
	EntityPool     EntityType = "pool"
	EntityProtocol EntityType = "protocol"
)

// Confidence is the certainty of an entity label
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// TxType is the kind of a transaction
type TxType string

const (
	TxTransfer            TxType = "transfer"
	TxSwap                TxType = "swap"
	TxMint                TxType = "mint"
	TxBurn                TxType = "burn"
	TxContractInteraction TxType = "contract_interaction"
)

// TxStatus is the execution result of a transaction
type TxStatus string

const (
	TxSuccess TxStatus = "success"
	TxFailed  TxStatus = "failed"
)

// AlertType is the detection that raised an alert
type AlertType string

const (
	AlertWhaleMovement      AlertType = "whale_movement"
	AlertLiquidityRisk      AlertType = "liquidity_risk"
	AlertExchangeInflow     AlertType = "exchange_inflow"
	AlertSuspiciousActivity AlertType = "suspicious_activity"
)

// Severity ranks an alert
type Severity string

const (
	SeverityCritical  Severity = "critical"
	SeverityImportant Severity = "important"
	SeverityNormal    Severity = "normal"
)

// PoolEventType is the kind of a pool event
type PoolEventType string

const (
	EventAddLiquidity    PoolEventType = "add_liquidity"
	EventRemoveLiquidity PoolEventType = "remove_liquidity"
	EventSwap            PoolEventType = "swap"
)

// Closed value sets.
var (
	EntityTypes = []EntityType{EntityExchange, EntityWallet, EntityContract, EntityPool, EntityProtocol}
	Confidences = []Confidence{ConfidenceHigh, ConfidenceMedium, ConfidenceLow}
	TxTypes     = []TxType{TxTransfer, TxSwap, TxMint, TxBurn, TxContractInteraction}
	TxStatuses  = []TxStatus{TxSuccess, TxFailed}
	AlertTypes  = []AlertType{AlertWhaleMovement, AlertLiquidityRisk, AlertExchangeInflow, AlertSuspiciousActivity}
	Severities  = []Severity{SeverityCritical, SeverityImportant, SeverityNormal}
	EventTypes  = []PoolEventType{EventAddLiquidity, EventRemoveLiquidity, EventSwap}
	Protocols   = []string{"Uniswap V3", "Uniswap V2", "SushiSwap", "Curve", "Balancer", "PancakeSwap"}
)

// Balance is one token position of an entity
type Balance struct {
	Symbol    string  `json:"symbol"`
	Amount    float64 `json:"amount"`
	Price     float64 `json:"price"`
	USDValue  float64 `json:"usd_value"`
	Change24h float64 `json:"change_24h"`
}

// Counterparty is an address an entity frequently transacts with
type Counterparty struct {
	Address     string     `json:"address"`
	Label       *string    `json:"label"`
	EntityType  EntityType `json:"entity_type"`
	TotalVolume float64    `json:"total_volume"`
	TxCount     int        `json:"tx_count"`
}

// Entity is an address-level profile
type Entity struct {
	ID                string         `json:"id"`
	Address           string         `json:"address"`
	Label             string         `json:"label"`
	EntityType        EntityType     `json:"entity_type"`
	Confidence        Confidence     `json:"confidence"`
	Network           string         `json:"network"`
	TotalBalanceUSD   float64        `json:"total_balance_usd"`
	Balances          []Balance      `json:"balances"`
	Inflow24h         float64        `json:"inflow_24h"`
	Outflow24h        float64        `json:"outflow_24h"`
	Inflow7d          float64        `json:"inflow_7d"`
	Outflow7d         float64        `json:"outflow_7d"`
	TxCount           int            `json:"tx_count"`
	FirstSeen         time.Time      `json:"first_seen"`
	LastActive        time.Time      `json:"last_active"`
	Tags              []string       `json:"tags"`
	RiskScore         int            `json:"risk_score"`
	TopCounterparties []Counterparty `json:"top_counterparties,omitempty"`
}

// InternalTx is one step of a transaction's call trace
type InternalTx struct {
	Step        int     `json:"step"`
	Action      string  `json:"action"`
	FromAddress string  `json:"from_address"`
	FromLabel   *string `json:"from_label"`
	ToAddress   string  `json:"to_address"`
	ToLabel     *string `json:"to_label"`
	TokenSymbol string  `json:"token_symbol"`
	TokenAmount float64 `json:"token_amount"`
}

// Transaction is an on-chain transaction
type Transaction struct {
	ID          string       `json:"id"`
	Hash        string       `json:"hash"`
	BlockNumber int64        `json:"block_number"`
	Timestamp   time.Time    `json:"timestamp"`
	Network     string       `json:"network"`
	TxType      TxType       `json:"tx_type"`
	FromAddress string       `json:"from_address"`
	FromLabel   *string      `json:"from_label"`
	ToAddress   string       `json:"to_address"`
	ToLabel     *string      `json:"to_label"`
	TokenSymbol string       `json:"token_symbol"`
	TokenAmount float64      `json:"token_amount"`
	TokenPrice  float64      `json:"token_price"`
	USDValue    float64      `json:"usd_value"`
	GasUsed     int64        `json:"gas_used"`
	GasPrice    float64      `json:"gas_price"`
	GasFeeUSD   float64      `json:"gas_fee_usd"`
	Status      TxStatus     `json:"status"`
	InternalTxs []InternalTx `json:"internal_txs,omitempty"`
	Tags        []string     `json:"tags"`
}

// LPHolder is a liquidity provider of a pool
type LPHolder struct {
	Address         string  `json:"address"`
	Label           *string `json:"label"`
	SharePercentage float64 `json:"share_percentage"`
	LiquidityUSD    float64 `json:"liquidity_usd"`
}

// PoolEvent is a recent pool interaction
type PoolEvent struct {
	ID        string        `json:"id"`
	EventType PoolEventType `json:"event_type"`
	Address   string        `json:"address"`
	Label     *string       `json:"label"`
	AmountUSD float64       `json:"amount_usd"`
	TxHash    string        `json:"tx_hash"`
	Timestamp time.Time     `json:"timestamp"`
}

// Pool is a two-token liquidity pool
type Pool struct {
	ID                 string      `json:"id"`
	Address            string      `json:"address"`
	Name               string      `json:"name"`
	Protocol           string      `json:"protocol"`
	Network            string      `json:"network"`
	Token0Symbol       string      `json:"token0_symbol"`
	Token0Reserve      float64     `json:"token0_reserve"`
	Token1Symbol       string      `json:"token1_symbol"`
	Token1Reserve      float64     `json:"token1_reserve"`
	TotalLiquidityUSD  float64     `json:"total_liquidity_usd"`
	Volume24h          float64     `json:"volume_24h"`
	Fees24h            float64     `json:"fees_24h"`
	APY                float64     `json:"apy"`
	LiquidityChange24h float64     `json:"liquidity_change_24h"`
	LiquidityChange7d  float64     `json:"liquidity_change_7d"`
	TopLPHolders       []LPHolder  `json:"top_lp_holders,omitempty"`
	RecentEvents       []PoolEvent `json:"recent_events,omitempty"`
}

// Alert is a raised detection
type Alert struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	AlertType       AlertType `json:"alert_type"`
	Severity        Severity  `json:"severity"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	EntityAddress   string    `json:"entity_address"`
	EntityLabel     *string   `json:"entity_label"`
	TransactionHash string    `json:"transaction_hash"`
	Network         string    `json:"network"`
	USDValue        float64   `json:"usd_value"`
	Tags            []string  `json:"tags"`
}

// FlowNode is an entity in a flow graph
type FlowNode struct {
	ID          string     `json:"id"`
	Label       string     `json:"label"`
	EntityType  EntityType `json:"entity_type"`
	Network     string     `json:"network"`
	TotalVolume float64    `json:"total_volume"`
}

// FlowLink is a directed volume edge between two nodes
type FlowLink struct {
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Value   float64 `json:"value"`
	TxCount int     `json:"tx_count"`
}

// FlowGraph is a node/edge volume graph
type FlowGraph struct {
	Nodes []FlowNode `json:"nodes"`
	Links []FlowLink `json:"links"`
}

// PricePoint is one hourly sample of a price series
type PricePoint struct {
	Timestamp time.Time `json:"timestamp"`
	Price     float64   `json:"price"`
	Volume    float64   `json:"volume"`
}

// PriceHistory is an hourly price series for a symbol
type PriceHistory struct {
	Symbol    string       `json:"symbol"`
	Period    string       `json:"period"`
	BasePrice float64      `json:"base_price"`
	Data      []PricePoint `json:"data"`
}

// DashboardStats are the headline counters of the dashboard
type DashboardStats struct {
	TotalVolume24h       float64 `json:"total_volume_24h"`
	TotalTransactions24h int     `json:"total_transactions_24h"`
	ActiveEntities       int     `json:"active_entities"`
	WhaleMovements       int     `json:"whale_movements"`
	TotalLiquidityUSD    float64 `json:"total_liquidity_usd"`
	ActiveAlerts         int     `json:"active_alerts"`
	NetworksTracked      int     `json:"networks_tracked"`
}
