// Package api holds the fleet's RPC schema: the message types and the
// client/server glue for InventoryService and OrderService.
//
// The bindings are maintained by hand against the .proto sources in
// this directory so the repo builds without a protoc toolchain. They
// keep the generated shape (protoimpl message state, struct tags,
// grpc.ServiceDesc glue); the file descriptors are assembled from
// descriptorpb literals and marshaled at init, which the descriptor
// tests in this package pin against the real wire format. When a
// message or method changes, update the .proto, the struct, and the
// descriptor literal together.
package api
