// Package inventory exposes the stock cache over HTTP.
//
// # HTTP Endpoints
//
//   - GET /stock : Lists every cached product and its quantity.
//   - GET /stock/:productId : Returns the cached quantity as a bare JSON integer (0 when unknown).
//   - POST /stock/retrieve : Takes {"productId","amount"} out of stock; 400 "Not enough stock." when short.
//   - POST /stock/restock : Adds {"productId","amount"} to stock.
//
// Handlers never wait on persistence or on the warehouse; both happen in the background.
package inventory
