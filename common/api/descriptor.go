package api

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
)

// Builders for the descriptorpb literals in inventory.go and order.go.
// Proto3 scalars are singular LABEL_OPTIONAL fields.

func int32Field(name string, number int32, jsonName string) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, jsonName, descriptorpb.FieldDescriptorProto_TYPE_INT32)
}

func int64Field(name string, number int32, jsonName string) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, jsonName, descriptorpb.FieldDescriptorProto_TYPE_INT64)
}

func stringField(name string, number int32, jsonName string) *descriptorpb.FieldDescriptorProto {
	return scalarField(name, number, jsonName, descriptorpb.FieldDescriptorProto_TYPE_STRING)
}

func scalarField(name string, number int32, jsonName string, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:     typ.Enum(),
		JsonName: proto.String(jsonName),
	}
}

func repeatedMessageField(name string, number int32, jsonName, typeName string) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:     proto.String(name),
		Number:   proto.Int32(number),
		Label:    descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum(),
		Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
		TypeName: proto.String(typeName),
		JsonName: proto.String(jsonName),
	}
}

func method(name, inputType, outputType string) *descriptorpb.MethodDescriptorProto {
	return &descriptorpb.MethodDescriptorProto{
		Name:       proto.String(name),
		InputType:  proto.String(inputType),
		OutputType: proto.String(outputType),
	}
}

func mustMarshalFileDescriptor(fd *descriptorpb.FileDescriptorProto) []byte {
	b, err := proto.Marshal(fd)
	if err != nil {
		panic(err)
	}
	return b
}
