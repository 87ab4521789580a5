package api

import (
	"reflect"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/runtime/protoimpl"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Types for inventory.proto. Keep in sync with the descriptor literal
// at the bottom of this file.

type DeductionInventoryRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	InventoryId    int32 `protobuf:"varint,1,opt,name=inventory_id,json=inventoryId,proto3" json:"inventory_id,omitempty"`
	DeductionCount int32 `protobuf:"varint,2,opt,name=deduction_count,json=deductionCount,proto3" json:"deduction_count,omitempty"`
	OrdersId       int32 `protobuf:"varint,3,opt,name=orders_id,json=ordersId,proto3" json:"orders_id,omitempty"`
}

func (x *DeductionInventoryRequest) Reset() {
	*x = DeductionInventoryRequest{}
	mi := &file_inventory_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeductionInventoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeductionInventoryRequest) ProtoMessage() {}

func (x *DeductionInventoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_inventory_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DeductionInventoryRequest) GetInventoryId() int32 {
	if x != nil {
		return x.InventoryId
	}
	return 0
}

func (x *DeductionInventoryRequest) GetDeductionCount() int32 {
	if x != nil {
		return x.DeductionCount
	}
	return 0
}

func (x *DeductionInventoryRequest) GetOrdersId() int32 {
	if x != nil {
		return x.OrdersId
	}
	return 0
}

type DeductionInventoryResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Result int32 `protobuf:"varint,1,opt,name=result,proto3" json:"result,omitempty"`
}

func (x *DeductionInventoryResponse) Reset() {
	*x = DeductionInventoryResponse{}
	mi := &file_inventory_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DeductionInventoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DeductionInventoryResponse) ProtoMessage() {}

func (x *DeductionInventoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_inventory_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

func (x *DeductionInventoryResponse) GetResult() int32 {
	if x != nil {
		return x.Result
	}
	return 0
}

var File_inventory_proto protoreflect.FileDescriptor

var file_inventory_proto_rawDesc []byte

var file_inventory_proto_msgTypes = make([]protoimpl.MessageInfo, 2)

var file_inventory_proto_goTypes = []interface{}{
	(*DeductionInventoryRequest)(nil),  // 0: inventory.DeductionInventoryRequest
	(*DeductionInventoryResponse)(nil), // 1: inventory.DeductionInventoryResponse
}

var file_inventory_proto_depIdxs = []int32{
	0, // 0: inventory.InventoryService.DeductionInventory:input_type -> inventory.DeductionInventoryRequest
	1, // 1: inventory.InventoryService.DeductionInventory:output_type -> inventory.DeductionInventoryResponse
	1, // [1:2] is the sub-list for method output_type
	0, // [0:1] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_inventory_proto_init() }
func file_inventory_proto_init() {
	if File_inventory_proto != nil {
		return
	}

	file_inventory_proto_rawDesc = mustMarshalFileDescriptor(&descriptorpb.FileDescriptorProto{
		Name:    proto.String("inventory.proto"),
		Package: proto.String("inventory"),
		Syntax:  proto.String("proto3"),
		Options: &descriptorpb.FileOptions{
			GoPackage: proto.String("github.com/minimart/minimart/common/api"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("DeductionInventoryRequest"),
				Field: []*descriptorpb.FieldDescriptorProto{
					int32Field("inventory_id", 1, "inventoryId"),
					int32Field("deduction_count", 2, "deductionCount"),
					int32Field("orders_id", 3, "ordersId"),
				},
			},
			{
				Name: proto.String("DeductionInventoryResponse"),
				Field: []*descriptorpb.FieldDescriptorProto{
					int32Field("result", 1, "result"),
				},
			},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{
				Name: proto.String("InventoryService"),
				Method: []*descriptorpb.MethodDescriptorProto{
					method("DeductionInventory", ".inventory.DeductionInventoryRequest", ".inventory.DeductionInventoryResponse"),
				},
			},
		},
	})

	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_inventory_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   2,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_inventory_proto_goTypes,
		DependencyIndexes: file_inventory_proto_depIdxs,
		MessageInfos:      file_inventory_proto_msgTypes,
	}.Build()
	File_inventory_proto = out.File
	file_inventory_proto_rawDesc = nil
	file_inventory_proto_goTypes = nil
	file_inventory_proto_depIdxs = nil
}
