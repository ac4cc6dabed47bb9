// Package discovery implements the Alpaca UDP discovery protocol.
//
// Discovery is a one-shot exchange: a client broadcasts the fixed magic
// string to UDP port 32227 and every Alpaca server on the subnet replies
// with a small JSON document naming its HTTP port. The Responder answers
// those broadcasts for this server; Discover performs the client side.
//
// An optional mDNS advertiser announces the same endpoint as an
// "_alpaca._tcp" service for clients that prefer DNS-SD.
package discovery
