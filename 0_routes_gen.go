package console

// WARNING: This file was generated by rgen. Do not modify.

// routeDecls is the generated route list in declaration order.
var routeDecls = []RouteDecl{
	{Pattern: "/main", View: "main-ready", Controller: "Main"},
	{Pattern: "/main/:application", View: "main", Controller: "Main"},
	{Pattern: "/main/:application/:readablePeriod", View: "main", Controller: "Main"},
	{Pattern: "/main/:application/:readablePeriod/:queryEndDateTime", View: "main", Controller: "Main"},
	{Pattern: "/filteredMap/:application/:readablePeriod/:queryEndDateTime/:filter", View: "filteredMap", Controller: "FilteredMap"},
	{Pattern: "/filteredMap/:application/:readablePeriod/:queryEndDateTime/:filter/:hint", View: "filteredMap", Controller: "FilteredMap"},
	{Pattern: "/inspector/:application/:readablePeriod/:queryEndDateTime", View: "inspector", Controller: "Inspector"},
	{Pattern: "/inspector/:application/:readablePeriod/:queryEndDateTime/:agentId", View: "inspector", Controller: "Inspector"},
	{Pattern: "/transactionList/:application/:readablePeriod/:queryEndDateTime", View: "transactionList", Controller: "TransactionList"},
	{Pattern: "/transactionList/:application/:readablePeriod/:queryEndDateTime/:transactionInfo", View: "transactionList", Controller: "TransactionList"},
	{Pattern: "/transactionDetail", View: "ready-placeholder", Controller: "TransactionDetail"},
	{Pattern: "/transactionDetail/:traceId/:focusTimestamp/:agentId/:spanId", View: "transactionDetail", Controller: "TransactionDetail"},
	{Pattern: "/transactionView/:agentId/:traceId/:focusTimestamp/:spanId", View: "transactionView", Controller: "TransactionView"},
	{Pattern: "/scatterFullScreenMode/:application/:readablePeriod/:queryEndDateTime/:agentList", View: "scatterFullScreenMode", Controller: "ScatterFullScreenMode"},
	{Pattern: "/scatterFullScreenMode/:application/:readablePeriod/:queryEndDateTime/:filter", View: "scatterFullScreenMode", Controller: "ScatterFullScreenMode"},
	{Pattern: "/threadDump/:application/:agentId", View: "threadDump", Controller: "ThreadDump"},
}

// routeFallback is where unmatched paths are redirected.
const routeFallback = "/main"
