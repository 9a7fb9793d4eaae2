// Package lemon provides a typed client for the lemon.markets trading REST API.
//
// Endpoints:
//   - Paper money: https://paper-trading.lemon.markets/v1
//   - Real money: https://trading.lemon.markets/v1
//
// All monetary amounts are integers in 1/10000 of the major currency unit
// (divide by 10000 to get euros). The client passes them through unchanged.
package lemon
