// Package horizon is a typed client for Horizon, the ledger-indexing HTTP
// API of a Stellar-style network.
//
// Requests are value-type endpoint structs built with With* modifiers and
// executed by generic package-level functions: Fetch for single records,
// FetchPage for one page of a collection, NewIter for transparent pagination
// across pages, and Stream for a live server-sent-event feed. The endpoint
// type decides at compile time which execution functions accept it.
//
//	client, err := horizon.New("https://horizon-testnet.stellar.org")
//	if err != nil { ... }
//
//	account, err := horizon.Fetch(ctx, client, horizon.NewAccountDetails(address))
//
//	it := horizon.NewIter[horizon.Transaction](client, horizon.NewTransactions().WithLimit(50))
//	for {
//		tx, err := it.Next(ctx)
//		if errors.Is(err, horizon.ErrNoMoreRecords) {
//			break
//		}
//		...
//	}
//
// Server-reported failures are returned as *Problem values carrying the
// machine-readable problem document Horizon responds with; IsNotFound and
// the other predicates classify them without string matching.
package horizon
