package career

// Sample returns the built-in career data set used when no data file is
// available. It doubles as a starter document for the init command.
//
//nolint:funlen // Fixture data
func Sample() (data Data) {
	data = Data{
		Profile: Profile{
			Name:     "Alex Carter",
			Title:    "Senior Full-Stack Engineer",
			Phone:    "+1 (555) 010-4477",
			Email:    "alex.carter@example.com",
			LinkedIn: "https://linkedin.com/in/alexcarter",
			GitHub:   "https://github.com/alexcarter",
			Location: "San Francisco, CA",
		},
		Experiences: []Experience{
			{
				Company:     "HELLOGOV AI",
				Role:        "LEAD FULL-STACK ENGINEER",
				Duration:    "Sep 2023 - Present",
				JobType:     "Remote",
				Description: "Leading full-stack development for AI-powered government services platform, architecting and developing multiple high-impact applications driving significant business growth. Built comprehensive marketing website generating hundreds of thousands of dollars in daily revenue through strategic SEO optimization and Google Ads integration. Developed server-side rendered Next.js website with advanced performance optimization, achieving superior Core Web Vitals scores. Architected and built end-to-end customer portal for US passport application services with AI-powered assistance features. Developed intelligent document validation system using machine learning algorithms to verify passport application documents before submission, reducing processing errors and improving approval rates. Created AI-powered conversational interface and chatbot using natural language processing to guide customers through complex application requirements. Technologies used: Next.js, React.js, TypeScript, Node.js, PostgreSQL, AI/ML integration, natural language processing, document validation algorithms, styled-components, Google Ads API, SEO optimization, server-side rendering, government API integration, PDF generation, security compliance, and modern DevOps practices.",
			},
			{
				Company:     "CODING CRAFTS",
				Role:        "CHIEF EXECUTIVE OFFICER & LEAD ENGINEER",
				Duration:    "Mar 2020 - Sep 2023",
				JobType:     "Remote",
				Description: "Led comprehensive technology company delivering cutting-edge software solutions for startups and enterprises across multiple technology stacks and industry verticals. Spearheaded end-to-end development of web and mobile applications using React.js, React Native, Node.js, TypeScript, and MongoDB, delivering tailored solutions for diverse clients across healthcare, fitness, blockchain, and e-commerce industries. Architected advanced AI and Machine Learning solutions focusing on Natural Language Processing (NLP), Deep Learning, and Large Language Model (LLM) integration, creating conversational AI platforms, AI-powered search engines, and automated response optimization frameworks. Built sophisticated mobile applications for iOS and Android using React Native, implementing push notifications, offline capabilities, real-time data synchronization, location-based services, and secure payment processing through Firebase, Google Maps API, and Stripe integrations. Developed complex Web3 and blockchain solutions utilizing Ethereum, smart contracts, decentralized applications (dApps), and cryptocurrency integration. Technologies used: React.js, React Native, Node.js, TypeScript, Python, MongoDB, PostgreSQL, AWS cloud services, AI/ML frameworks, blockchain technologies, WebRTC, 3D graphics, payment processing, healthcare compliance, real-time systems, microservices architecture, and modern DevOps practices.",
			},
			{
				Company:     "FACEBOOK",
				Role:        "SOFTWARE ENGINEER",
				Duration:    "Aug 2017 - Mar 2020",
				JobType:     "Onsite",
				Description: "Developed high-impact applications and infrastructure solutions at Facebook, serving 2.8+ billion users globally through innovative VR technology, News Feed optimization, and scalable backend systems. Built comprehensive Oculus VR ecosystem including React Native companion app for iOS and Android with live streaming, screen mirroring from Oculus Quest/Go, mixed reality capture, and abuse reporting for VR social experiences. Implemented sophisticated WebRTC-based streaming infrastructure enabling real-time video transmission from Oculus headsets to React Native mobile applications and Chromecast devices. Developed critical Facebook News Feed backend services using advanced data processing algorithms, building scalable content delivery systems that optimize feed ranking, personalization, and real-time content distribution for billions of daily active users. Architected GraphQL live queries and subscription systems migrating legacy data fetching to real-time updates, improving content loading performance by 35%. Built C++ client applications for Facebook data centers performing end-to-end testing of News Feed services. Technologies used: React.js, React Native, Node.js, GraphQL, Redux, C++, WebRTC, Android development, iOS development, TypeScript, real-time systems, data center infrastructure, A/B testing platforms, RESTful APIs, performance optimization, cross-platform development, VR/AR technologies, and large-scale distributed systems.",
			},
			{
				Company:     "MICROSOFT",
				Role:        "SOFTWARE ENGINEER II",
				Duration:    "Oct 2012 - Jun 2017",
				JobType:     "Onsite",
				Description: "Developed enterprise-scale communication applications at Microsoft serving 300+ million Skype users globally, building cross-platform solutions across Skype Consumer, Remote Desktop, and Microsoft Mediaroom. Led comprehensive Android application development for Remote Desktop Client using Android SDK, implementing custom UI widgets, MVP architecture patterns, and Material Design-compliant interfaces for enterprise remote access. Architected JNI C++/Java integration layers using Android NDK, enabling seamless cross-platform communication between native C++ libraries and Java applications, reducing Remote Desktop connection failures by 10% through optimized host machine discovery protocols. Built advanced SQLite database implementations with intelligent caching strategies for offline data storage, message synchronization, and user presence management ensuring reliable Skype functionality during network interruptions. Developed telemetry and analytics systems for A/B testing, quality improvement, and crash collection across Android applications. Technologies used: Android SDK, Java, C++, JNI/NDK integration, SQLite, RxJava, MVP architecture, Material Design, React.js, TypeScript, Node.js, Azure cloud services, Remote Desktop Protocol (RDP), telemetry systems, automated testing, CI/CD pipelines, cross-platform development, and enterprise application architecture.",
			},
		},
		Projects: []Project{
			{
				Name:        "EarthFund - Decentralized Environmental Fundraising Ecosystem",
				Link:        "https://earthfund.io/",
				Description: "Architected and developed a comprehensive decentralized ecosystem for environmental fundraising, comprising the EarthFund crowdfunding platform, 1Earth cryptocurrency marketplace, and EarthFund Foundation DAO governance system. Built blockchain-based fundraising platform enabling global community participation in environmental projects through Web3 technology and decentralized governance. Developed full-stack decentralized application (dApp) using Next.js frontend with Web3 wallet integration supporting MetaMask and WalletConnect. Implemented smart contract integration using Web3.js and useDApp hooks for real-time blockchain interactions, secure decentralized transactions, and automated fund distribution. Technologies used: Next.js, React.js, Web3.js, useDApp, TypeScript, Node.js, TypeORM, PostgreSQL, AWS Lambda, DynamoDB, AWS Serverless, smart contracts, blockchain integration, cryptocurrency trading, DAO governance, DeFi protocols, MetaMask integration, real-time staking, tokenomics, and decentralized application architecture.",
			},
			{
				Name:        "YogaJoint - Multi-Location Fitness Studio Platform & SHIFT Mobile App",
				Link:        "https://www.yogajoint.com/",
				Description: "Architected and developed a comprehensive multi-location fitness platform for a Florida-based yoga studio chain operating across nine locations. Built full-stack fitness ecosystem including SEO-optimized marketing website, advanced class booking system, and the SHIFT mobile application with social discovery features. Developed scalable multi-tenant architecture supporting centralized database management for all studio locations while enabling location-specific class scheduling, instructor management, and real-time availability tracking. Implemented sophisticated class booking with visual mat selection allowing users to view studio layouts and book specific positions. Technologies used: React.js, React Native, TypeScript, Node.js, PostgreSQL, AWS Lambda, AWS serverless architecture, Stripe API, video streaming infrastructure, real-time notifications, social features, multi-tenant architecture, payment processing, analytics dashboard, SEO optimization, mobile-first design, cross-platform development, and scalable cloud infrastructure.",
			},
			{
				Name:        "BicycleHealth - Telemedicine App for Opioid Use Disorder Treatment",
				Link:        "https://play.google.com/store/apps/details?id=com.bicyclehealth.patient.app",
				Description: "Developed comprehensive React Native telemedicine application for BicycleHealth, improving healthcare accessibility by 60% through a mobile-first addiction recovery platform. Built HIPAA-compliant healthcare application using TypeScript and React Native, serving thousands of patients struggling with opioid addiction while connecting them with specialized healthcare providers through secure telemedicine infrastructure. Architected custom Zoom SDK integration with React Native wrapper, enabling video and audio consultations directly within the mobile app. Implemented comprehensive appointment scheduling allowing patients to book, reschedule, and join virtual appointments with addiction specialists, primary care physicians, and mental health counselors. Technologies used: React Native, TypeScript, Redux, Firebase, GraphQL APIs, Zoom SDK integration, Face ID authentication, Stripe payment processing, HIPAA compliance, telemedicine infrastructure, healthcare workflows, prescription management, real-time chat, push notifications, biometric security, and mobile healthcare platforms.",
			},
			{
				Name:        "WikiSearch - AI-Powered Vector Search Engine",
				Link:        "https://www.wikisearch.dev/",
				Description: "Engineered a large-scale AI-powered search engine by vectorizing the entire Wikipedia dataset (6+ million articles) using OpenAI's embedding models and storing in Apache Cassandra for distributed, high-performance vector storage. Built semantic search platform enabling context-aware queries that understand user intent beyond keyword matching. Developed full-stack application with modern frontend interface allowing natural language queries against semantically similar content through vector similarity algorithms. Implemented robust ETL pipeline to process, chunk, and embed millions of Wikipedia articles at scale. Technologies used: Python, OpenAI Embeddings API, Apache Cassandra, vector databases, semantic search, natural language processing (NLP), machine learning, ETL pipelines, distributed systems, React.js frontend, vector similarity algorithms, text preprocessing, data engineering, and scalable cloud infrastructure.",
			},
			{
				Name:        "Wikichat - Conversational AI for Wikipedia",
				Link:        "https://www.wikich.at/",
				Description: "Created conversational AI for Wikipedia using Langchain, Amazon Bedrock, OpenAI APIs, and Astra DB for vector storage. Implemented RAG (Retrieval Augmented Generation) system to retrieve and store Wikipedia vectors for real-time AI-powered responses. Built with Python backend and React frontend, utilizing advanced NLP techniques and semantic search capabilities.",
			},
			{
				Name:        "Astra Block - Ethereum Blockchain Explorer",
				Description: "Built a comprehensive Ethereum blockchain explorer with real-time data extraction, transformation, and loading capabilities for crypto and NFT marketplace analytics. Developed full-stack application using React.js with TypeScript frontend, Node.js backend, and GraphQL API. Implemented advanced blockchain data processing to decode smart contract events, maintain complete blockchain transaction history, and track assets across wallet addresses. Technologies used: React.js, TypeScript, Node.js, GraphQL, DataStax, Ethereum Web3 APIs, real-time data streaming, blockchain analytics, smart contract interaction, and modern frontend/backend development practices.",
			},
			{
				Name:        "DataStax Marketing Website",
				Link:        "https://www.datastax.com/",
				Description: "Architected and developed a high-performance, server-side rendered marketing website for DataStax using Next.js, achieving optimal SEO performance. Built enterprise-grade marketing platform with Marketo for marketing automation, ZoomInfo for lead intelligence, and ABTasty for A/B testing and conversion optimization. Implemented Sanity CMS as headless content management, enabling non-technical editors to manage content through live editing. Technologies used: Next.js, React.js, TypeScript, Sanity CMS, Marketo API, ZoomInfo integration, ABTasty SDK, server-side rendering (SSR), static site generation (SSG), responsive web design, SEO optimization, marketing automation, lead generation, and modern JAMstack architecture.",
			},
			{
				Name:        "Loadsrunner Fleet Management Solution",
				Link:        "https://app.loadsrunner.com/",
				Description: "Developed comprehensive B2B logistics platform serving small, medium, and large trucking fleets with real-time load booking and fleet management. Built scalable web application using Next.js and React Context for state management, serving thousands of active fleet managers and dispatch houses. Architected live loadboard system enabling real-time load discovery, bidding, and booking with dynamic pricing and availability updates using SWR hooks. Technologies used: Next.js, React.js, React Context API, SWR hooks, Material-UI (MUI), TypeScript, Stripe Payment API, real-time data synchronization, WebSocket integration, geolocation services, route optimization algorithms, multi-tenant architecture, role-based access control, B2B payment processing, logistics APIs, fleet tracking systems, and responsive web design.",
			},
			{
				Name:        "Midato Health - HIPAA-Compliant Consent Management Platform",
				Description: "Developed enterprise-grade consent management platform for Washington State healthcare system, enabling secure patient consent collection and medical record release authorization across state healthcare networks. Built HIPAA-compliant web application using React.js frontend and Node.js backend, serving thousands of healthcare providers and patients. Architected serverless backend infrastructure using AWS Lambda functions for scalable, secure processing of sensitive medical consent data under strict healthcare compliance standards. Technologies used: React.js, Node.js, AWS Lambda, AWS serverless architecture, HIPAA compliance, digital signatures, identity verification, healthcare APIs, EHR integration, audit logging, data encryption, multi-factor authentication, role-based access control, regulatory compliance, healthcare workflow automation, and secure cloud infrastructure.",
			},
			{
				Name:        "Eternally - Next-Generation Social Media Platform",
				Link:        "https://apps.apple.com/us/app/eternally/id1625353940",
				Description: "Architected and developed a social media platform designed around innovative features and seamless cross-platform functionality. Built comprehensive social networking ecosystem using React Native for mobile applications (iOS and Android) and React.js for web, ensuring consistent user experience across devices with shared component architecture. Developed posting and timeline system with real-time content synchronization, intelligent feed algorithms, and dynamic content rendering supporting multimedia posts and stories. Technologies used: React Native, React.js, TypeScript, PostgreSQL, AWS cloud infrastructure, Stripe payment processing, real-time messaging, video streaming, push notifications, content delivery networks (CDN), cross-platform development, social media algorithms, multimedia processing, secure authentication, and scalable social networking architecture.",
			},
			{
				Name:        "LuxPark - Truck Parking Marketplace Platform",
				Link:        "https://luxpark.com",
				Description: "Developed a comprehensive B2B marketplace platform connecting parking space owners with truck drivers. Built full-stack marketplace ecosystem using React.js frontend, Node.js backend, and GraphQL API architecture, serving thousands of truck drivers and parking facility owners across major transportation corridors. Architected two-sided marketplace with dual interfaces: property owner dashboard for listing and managing parking spaces, and driver mobile application for discovering, booking, and paying for secure truck parking in real-time. Technologies used: React.js, Node.js, Redux, GraphQL, PostgreSQL, SQL optimization, Stripe payment processing, geolocation APIs, real-time notifications, marketplace architecture, two-sided platform development, mobile-responsive design, machine learning recommendations, fraud prevention, and scalable cloud infrastructure.",
			},
			{
				Name:        "Roomie - 3D Room Planning & Shared Living Platform",
				Link:        "https://app.roomie.com/login",
				Description: "Architected and developed a 3D room planning platform for university students, city apartment residents, and property management companies through spatial visualization and collaborative design tools. Built comprehensive full-stack application using Next.js and React.js frontend with Spring Hibernate backend, serving students, property managers, and educational institutions. Developed 3D modeling engine enabling residents to visualize, plan, and customize living spaces with photorealistic furniture placement, room measurements, and spatial optimization tools. Technologies used: Next.js, React.js, Spring Framework, Hibernate ORM, PostgreSQL, 3D graphics rendering, WebGL, real-time collaboration, spatial algorithms, multi-tenant architecture, role-based access control, responsive design, property management systems, educational technology, and collaborative planning platforms.",
			},
		},
	}
	return data
}
