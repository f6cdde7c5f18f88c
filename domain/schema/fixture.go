package schema

// GraphName is the named graph every tenant database carries.
const GraphName = "MainGraph"

// EdgeDefinition describes one edge collection of the tenant graph and the
// vertex collections it may connect.
type EdgeDefinition struct {
	Collection string   `json:"edge_collection"`
	From       []string `json:"from_vertex_collections"`
	To         []string `json:"to_vertex_collections"`
}

// DocumentCollections lists every document collection a tenant database
// must contain.
var DocumentCollections = []string{
	"Customers", "Suppliers", "Products", "Modules", "RawMaterials",
	"Roles", "Users", "Teams", "Departments", "Events", "Objects",
	"Tasks", "Activities", "SalesOrders", "Organizations",
	"PurchaseOrders", "WorkOrders", "StockAreas", "Services",
}

// EdgeCollections lists every edge collection a tenant database must
// contain. Every collection referenced by GraphDefinitions appears here.
var EdgeCollections = []string{
	"EDGES", "MODULE_ASSEMBLES_INTO", "SUPPLIER_OFFERS", "CUSTOMER_BUYS",
	"USER_BUYS", "DEPARTMENT_HAS", "ORGANIZATION_HAS", "USER_IS",
	"USER_LEADS", "EVENT_TRIGGERS", "ACTIVITY_IS_PART_OF",
	"CUSTOMER_PLACES", "USER_PLACES", "STOCKAREA_CONTAINS", "USER_DOES",
}

// GraphDefinitions is the static edge-definition set of the tenant graph.
var GraphDefinitions = []EdgeDefinition{
	{Collection: "EDGES", From: []string{"Objects"}, To: []string{"Objects"}},
	{Collection: "MODULE_ASSEMBLES_INTO", From: []string{"Modules"}, To: []string{"Products"}},
	{Collection: "SUPPLIER_OFFERS", From: []string{"Suppliers"}, To: []string{"RawMaterials", "Modules", "Products", "Services", "Objects"}},
	{Collection: "CUSTOMER_BUYS", From: []string{"Customers"}, To: []string{"RawMaterials", "Modules", "Products", "Services", "Objects"}},
	{Collection: "USER_BUYS", From: []string{"Users"}, To: []string{"Products"}},
	{Collection: "ORGANIZATION_HAS", From: []string{"Organizations"}, To: []string{"Departments"}},
	{Collection: "DEPARTMENT_HAS", From: []string{"Departments"}, To: []string{"Users", "Teams"}},
	{Collection: "USER_IS", From: []string{"Users"}, To: []string{"Customers", "Suppliers"}},
	{Collection: "USER_LEADS", From: []string{"Users"}, To: []string{"Teams", "Departments", "Users"}},
	{Collection: "EVENT_TRIGGERS", From: []string{"Events"}, To: []string{"Tasks", "Activities", "Users"}},
	{Collection: "ACTIVITY_IS_PART_OF", From: []string{"Activities"}, To: []string{"Products", "Modules", "Services"}},
	{Collection: "CUSTOMER_PLACES", From: []string{"Customers"}, To: []string{"SalesOrders"}},
	{Collection: "USER_PLACES", From: []string{"Users"}, To: []string{"PurchaseOrders"}},
	{Collection: "STOCKAREA_CONTAINS", From: []string{"StockAreas"}, To: []string{"Products", "Modules", "RawMaterials"}},
}
