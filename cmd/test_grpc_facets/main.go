package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/procat-facets/internal/transport/grpc/catalog"
)

var (
	addr       = flag.String("addr", "localhost:9090", "gRPC server address")
	categoryID = flag.String("category", "", "Category id")
	region     = flag.String("region", "", "Region id")
	currency   = flag.String("currency", "", "Currency code")
	filters    = flag.String("filters", "{}", "Applied filters as a JSON object")
	listOnly   = flag.Bool("list", false, "List facets without counts")
)

func main() {
	flag.Parse()

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := catalog.NewCatalogServiceClient(conn)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, catalog.RequestIDHeader, uuid.NewString())

	req := &structpb.Struct{}
	if err := protojson.Unmarshal(fmt.Appendf(nil, `{"filters":%s}`, *filters), req); err != nil {
		log.Fatalf("Invalid filters: %v", err)
	}
	req.Fields["category_id"] = structpb.NewStringValue(*categoryID)
	if *region != "" {
		req.Fields["region_id"] = structpb.NewStringValue(*region)
	}
	if *currency != "" {
		req.Fields["currency_code"] = structpb.NewStringValue(*currency)
	}

	var resp *structpb.Struct
	if *listOnly {
		delete(req.Fields, "filters")
		resp, err = client.GetFacets(ctx, req)
	} else {
		resp, err = client.AggregateFacets(ctx, req)
	}
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}

	out, err := protojson.MarshalOptions{Multiline: true}.Marshal(resp)
	if err != nil {
		log.Fatalf("Failed to format response: %v", err)
	}
	fmt.Println(string(out))
}
